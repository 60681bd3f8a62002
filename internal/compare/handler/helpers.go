package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rajeesh668/firewall-comparison-tool/internal/compare/model"
)

func requestLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

type errorBody struct {
	Error  string       `json:"error"`
	Reason model.Reason `json:"reason,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, reason model.Reason) {
	writeJSON(w, status, errorBody{Error: msg, Reason: reason})
}

// id-not-found is a lookup failure; the rest mean "matching found
// nothing" and are not the client's fault.
func statusFor(reason model.Reason) int {
	if reason == model.ReasonIDNotFound {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

func reasonMessage(reason model.Reason) string {
	switch reason {
	case model.ReasonEmptyCandidates:
		return "no target models available"
	case model.ReasonNoSurvivor:
		return "no target model meets or exceeds the selected model on any compared field"
	case model.ReasonNoRankedSurvivor:
		return "no viable target model has a usable rank value"
	case model.ReasonIDNotFound:
		return "target model not found"
	default:
		return string(reason)
	}
}
