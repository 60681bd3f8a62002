package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeesh668/firewall-comparison-tool/internal/catalog"
	"github.com/rajeesh668/firewall-comparison-tool/internal/config"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
		return p
	}

	fortinet := write("fortinet.csv",
		"Model,Firewall Throughput (Gbps),IPS Throughput (Gbps)\n"+
			"FG-70F,10,1.4\n"+
			"FG-3000F,600,55\n"+
			"FG-BLANK,n/a,n/a\n")
	sophos := write("sophos.csv",
		"Model,Firewall Throughput (Gbps),IPS Throughput (Gbps)\n"+
			"XGS88,18.5,1.3\n"+
			"XGS108,24,3\n")

	cfg := &config.Catalog{
		RankField: "Firewall Throughput (Gbps)",
		Target:    "Sophos",
		Vendors: []config.VendorConfig{
			{
				Name:   "Fortinet",
				Source: fortinet,
				CompareFields: []string{
					"Firewall Throughput (Gbps)",
					"IPS Throughput (Gbps)",
				},
			},
			{Name: "Sophos", Source: sophos},
		},
	}
	cat, err := catalog.Load(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	return cat
}

func testRouter(t *testing.T) *chi.Mux {
	cat := testCatalog(t)
	r := chi.NewRouter()
	r.Get("/api/vendors", Vendors(cat))
	r.Get("/api/vendors/{vendor}/models", Models(cat))
	r.Get("/api/vendors/{vendor}/models/{model}", ModelDetail(cat))
	r.Post("/api/compare", Compare(cat, zerolog.Nop()))
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return w, out
}

func TestVendors(t *testing.T) {
	w, out := doJSON(t, testRouter(t), http.MethodGet, "/api/vendors", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Sophos", out["target"])
	assert.Equal(t, []any{"Fortinet"}, out["vendors"])
}

func TestModels(t *testing.T) {
	r := testRouter(t)

	w, out := doJSON(t, r, http.MethodGet, "/api/vendors/Fortinet/models", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"FG-70F", "FG-3000F", "FG-BLANK"}, out["models"])

	w, _ = doJSON(t, r, http.MethodGet, "/api/vendors/Cisco/models", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestModelDetail(t *testing.T) {
	r := testRouter(t)

	w, out := doJSON(t, r, http.MethodGet, "/api/vendors/Sophos/models/XGS88", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "XGS88", out["model"])

	w, out = doJSON(t, r, http.MethodGet, "/api/vendors/Sophos/models/XGS9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "id-not-found", out["reason"])
}

func TestCompare_Auto(t *testing.T) {
	w, out := doJSON(t, testRouter(t), http.MethodPost, "/api/compare",
		`{"vendor":"Fortinet","model":"FG-70F"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cand := out["candidate"].(map[string]any)
	// XGS88 (18.5) and XGS108 (24) both dominate; the smaller wins
	assert.Equal(t, "XGS88", cand["model"])

	report := out["report"].([]any)
	require.Len(t, report, 2)
	first := report[0].(map[string]any)
	assert.Equal(t, "Firewall Throughput (Gbps)", first["field"])
	assert.Equal(t, "185.0%", first["ratio"])
}

func TestCompare_AutoNoSurvivor(t *testing.T) {
	w, out := doJSON(t, testRouter(t), http.MethodPost, "/api/compare",
		`{"vendor":"Fortinet","model":"FG-3000F"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "no-survivor", out["reason"])
}

func TestCompare_AutoAllUnknownSource(t *testing.T) {
	// FG-BLANK has no parseable spec at all; must short-circuit
	w, out := doJSON(t, testRouter(t), http.MethodPost, "/api/compare",
		`{"vendor":"Fortinet","model":"FG-BLANK"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "no-survivor", out["reason"])
}

func TestCompare_Manual(t *testing.T) {
	r := testRouter(t)

	w, out := doJSON(t, r, http.MethodPost, "/api/compare",
		`{"vendor":"Fortinet","model":"FG-70F","mode":"manual","target_model":"XGS108"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	cand := out["candidate"].(map[string]any)
	assert.Equal(t, "XGS108", cand["model"])

	// no silent fallback to auto
	w, out = doJSON(t, r, http.MethodPost, "/api/compare",
		`{"vendor":"Fortinet","model":"FG-70F","mode":"manual","target_model":"XGS9999"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "id-not-found", out["reason"])
}

func TestCompare_BadRequests(t *testing.T) {
	r := testRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/api/compare", `{"vendor":"Fortinet","model":"FG-70F","mode":"magic"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/compare", `{"vendor":"Fortinet","model":"FG-70F","mode":"manual"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/compare", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, r, http.MethodPost, "/api/compare", `{"vendor":"Cisco","model":"ASA"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the target line is not a source side
	w, _ = doJSON(t, r, http.MethodPost, "/api/compare", `{"vendor":"Sophos","model":"XGS88"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
