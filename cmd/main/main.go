package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rajeesh668/firewall-comparison-tool/internal/catalog"
	"github.com/rajeesh668/firewall-comparison-tool/internal/config"
	serverhttp "github.com/rajeesh668/firewall-comparison-tool/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	catCfg, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("catalog config")
	}

	// Spec tables load once per session; the catalog is immutable after
	// this point and the comparison core never touches I/O.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 60*time.Second)
	cat, err := catalog.Load(loadCtx, catCfg, logger)
	cancelLoad()
	if err != nil {
		logger.Fatal().Err(err).Msg("load vendor tables")
	}

	r := serverhttp.NewRouter(cfg, cat, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
