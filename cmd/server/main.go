// Marquee - In-Memory Movie Catalog API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/tomtom215/marquee/internal/api"
	"github.com/tomtom215/marquee/internal/catalog"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/events"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/models"
	"github.com/tomtom215/marquee/internal/supervisor"
	"github.com/tomtom215/marquee/internal/supervisor/services"
	ws "github.com/tomtom215/marquee/internal/websocket"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.LogFormat(),
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Strs("cors_origins", cfg.Security.CORSOrigins).
		Msg("Starting Marquee")

	seed, err := loadSeed(cfg.Catalog.SeedPath)
	if err != nil {
		logging.Fatal().Err(err).Str("seed_path", cfg.Catalog.SeedPath).Msg("Failed to load seed data")
	}

	slogLogger := logging.NewSlogLogger()
	wmLogger := watermill.NewSlogLogger(slogLogger)

	var catalogOpts []catalog.Option
	var bus *events.Bus
	if cfg.Events.Enabled {
		bus = events.NewBus(events.BusConfig{OutputChannelBuffer: cfg.Events.BufferSize}, wmLogger)
		catalogOpts = append(catalogOpts, catalog.WithPublisher(bus))
	}

	cat, err := catalog.NewFromSeed(seed, catalogOpts...)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build catalog from seed")
	}
	logging.Info().Int("movies", cat.Len()).Msg("Catalog loaded")

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	var wsHub *ws.Hub
	if cfg.WebSocket.Enabled {
		wsHub = ws.NewHub()
		router, err := events.NewRouter(
			events.RouterConfig{CloseTimeout: cfg.Events.CloseTimeout},
			bus,
			wsHub,
			wmLogger,
		)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create event router")
		}

		tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
		tree.AddMessagingService(services.NewEventRouterService(router))
		logging.Info().Msg("Change feed enabled at /ws")
	}

	handler := api.NewHandler(cat, wsHub, cfg, version)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
		select {
		case <-errCh:
		case <-time.After(cfg.Server.ShutdownTimeout + 5*time.Second):
			logging.Warn().Msg("Supervisor did not stop in time")
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
		cancel()
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if bus != nil {
		if err := bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}

	logging.Info().Msg("Marquee stopped")
}

// loadSeed reads the configured seed file, or the embedded seed when path is empty.
func loadSeed(path string) ([]models.Movie, error) {
	if path == "" {
		return catalog.DefaultSeed()
	}
	return catalog.LoadSeedFile(path)
}
