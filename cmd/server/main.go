// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/marinestats/docs" // Import generated swagger docs
	"github.com/tomtom215/marinestats/internal/api"
	"github.com/tomtom215/marinestats/internal/config"
	"github.com/tomtom215/marinestats/internal/logging"
	"github.com/tomtom215/marinestats/internal/metrics"
	"github.com/tomtom215/marinestats/internal/storage"
	"github.com/tomtom215/marinestats/internal/supervisor"
	"github.com/tomtom215/marinestats/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// minWarmInterval keeps the stats warmer from hammering the store when
// the cache TTL is very short.
const minWarmInterval = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("backend", cfg.Database.Backend).
		Bool("tableau_configured", cfg.Tableau.Configured()).
		Msg("Starting Marinestats with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Open(ctx, &cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize occurrence store")
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing occurrence store")
		}
	}()
	logging.Info().Str("backend", store.Backend()).Msg("Occurrence store initialized")

	if version != "dev" {
		api.Version = version
	}
	metrics.AppInfo.WithLabelValues(api.Version, runtime.Version(), store.Backend()).Set(1)

	handler := api.NewHandler(store, cfg)
	defer handler.Close()

	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if handler.Stats().Cached() {
		interval := max(cfg.Stats.CacheTTL/2, minWarmInterval)
		tree.AddDataService(services.NewStatsWarmerService(
			handler.Stats(), interval, cfg.Server.StatsTimeout, logging.WithComponent("stats-warmer"),
		))
		logging.Info().Dur("interval", interval).Msg("Stats warmer added to supervisor tree")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server added to supervisor tree")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	// ServeBackground delivers exactly one result when the root supervisor returns.
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Marinestats stopped gracefully")
}
