package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rajeesh668/firewall-comparison-tool/internal/catalog"
	cmpHnd "github.com/rajeesh668/firewall-comparison-tool/internal/compare/handler"
	"github.com/rajeesh668/firewall-comparison-tool/internal/config"
	"github.com/rajeesh668/firewall-comparison-tool/internal/middleware"
	"github.com/rajeesh668/firewall-comparison-tool/server/http/handlers"
)

func NewRouter(cfg config.Config, cat *catalog.Catalog, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxBodyKB) * 1024))

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/vendors", cmpHnd.Vendors(cat))
		r.Get("/vendors/{vendor}/models", cmpHnd.Models(cat))
		r.Get("/vendors/{vendor}/models/{model}", cmpHnd.ModelDetail(cat))
		r.Post("/compare", cmpHnd.Compare(cat, logger))
	})

	return r
}
