package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/rajeesh668/firewall-comparison-tool/internal/catalog"
	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/model"
	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/service"
	"github.com/rajeesh668/firewall-comparison-tool/internal/metrics"
)

type compareRequest struct {
	Vendor string `json:"vendor"`
	Model  string `json:"model"`
	// Mode is "auto" (default) or "manual". Manual requires TargetModel
	// and echoes that exact row instead of ranking.
	Mode        string `json:"mode"`
	TargetModel string `json:"target_model"`
}

type compareResponse struct {
	Candidate *model.Record     `json:"candidate"`
	Report    []model.ReportRow `json:"report"`
}

// Compare runs one recommendation: resolve the source record, pick a
// target candidate (auto or manual), build the matching-score report.
func Compare(cat *catalog.Catalog, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := requestLogger(logger, r)

		var req compareRequest
		defer r.Body.Close()
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error(), "")
			return
		}
		if req.Mode == "" {
			req.Mode = "auto"
		}
		if req.Mode != "auto" && req.Mode != "manual" {
			writeError(w, http.StatusBadRequest, "mode must be auto or manual", "")
			return
		}
		if req.Mode == "manual" && req.TargetModel == "" {
			writeError(w, http.StatusBadRequest, "manual mode requires target_model", "")
			return
		}

		src, ok := cat.Source(req.Vendor)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown vendor: "+req.Vendor, "")
			return
		}
		rec, ok := src.Find(req.Model)
		if !ok {
			writeError(w, http.StatusNotFound, "model not found: "+req.Model, model.ReasonIDNotFound)
			return
		}

		target := cat.Target()
		var cand *model.Record
		var reason model.Reason
		if req.Mode == "manual" {
			cand, reason = service.SelectManual(target.Table, req.TargetModel)
		} else {
			cand, reason = service.SelectBest(*rec, target.Table, src.CompareFields, cat.RankField())
		}
		metrics.CompareDuration.Observe(time.Since(start).Seconds())

		if reason != "" {
			metrics.Comparisons.WithLabelValues(src.Name, string(reason)).Inc()
			log.Info().
				Str("vendor", src.Name).
				Str("model", req.Model).
				Str("mode", req.Mode).
				Str("reason", string(reason)).
				Msg("no recommendation")
			writeError(w, statusFor(reason), reasonMessage(reason), reason)
			return
		}
		metrics.Comparisons.WithLabelValues(src.Name, "matched").Inc()

		report := service.BuildReport(*rec, *cand, src.CompareFields)
		log.Info().
			Str("vendor", src.Name).
			Str("model", req.Model).
			Str("mode", req.Mode).
			Str("candidate", cand.Model).
			Dur("elapsed", time.Since(start)).
			Msg("compare done")
		writeJSON(w, http.StatusOK, compareResponse{Candidate: cand, Report: report})
	}
}

// Vendors lists the selectable source vendors plus the target line.
func Vendors(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := make([]string, 0, len(cat.Sources()))
		for _, v := range cat.Sources() {
			names = append(names, v.Name)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"vendors": names,
			"target":  cat.Target().Name,
		})
	}
}

// Models lists a vendor's model ids in table order. The target vendor is
// valid here so a UI can offer the manual pick list.
func Models(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "vendor")
		v, ok := cat.Vendor(name)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown vendor: "+name, "")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"vendor": v.Name,
			"models": v.Models(),
		})
	}
}

// ModelDetail returns the raw record for the detail table.
func ModelDetail(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "vendor")
		v, ok := cat.Vendor(name)
		if !ok {
			writeError(w, http.StatusNotFound, "unknown vendor: "+name, "")
			return
		}
		id := chi.URLParam(r, "model")
		rec, ok := v.Find(id)
		if !ok {
			writeError(w, http.StatusNotFound, "model not found: "+id, model.ReasonIDNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	}
}
