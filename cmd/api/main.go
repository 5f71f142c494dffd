// Copyright (c) 2026 Fotomoment. All rights reserved.
// Author: m.hartmann@fotomoment.app

// Command api is the entry point for the gallery HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Build the identity-provider token verifier (JWKS).
//  4. Build the lazy media store provider.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// Media store credentials are deliberately NOT validated at startup: the
// provider resolves them on first use and retries after failures, so the
// server comes up (and answers /health) before secrets are provisioned.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fotomoment/gallery-api/internal/api"
	"github.com/fotomoment/gallery-api/internal/gallery"
	"github.com/fotomoment/gallery-api/internal/identity"
	"github.com/fotomoment/gallery-api/internal/media"
	"github.com/fotomoment/gallery-api/internal/platform/config"
	"github.com/fotomoment/gallery-api/internal/platform/constants"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Application-lifetime context; cancelled on shutdown so background
	// loops (JWKS refresh, rate limiter cleanup) stop cleanly.
	appContext, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. Identity Provider ──────────────────────────────────────────────
	verifier, err := identity.NewJWKSVerifier(identity.VerifierOptions{
		JWKSURL:  cfg.AuthJWKSURL,
		Issuer:   cfg.AuthIssuer,
		Audience: cfg.AuthAudience,
	}, log)
	must(log, err, "initialize token verifier")

	gate := identity.NewGate(verifier)

	// ── 4. Media Store (lazy) ─────────────────────────────────────────────
	stores := media.NewProvider()

	// ── 5. Handler Wiring ─────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckStore: func() error {
			_, checkErr := stores.Get()
			return checkErr
		},
	}, log)

	galleryService := gallery.NewService(stores)
	galleryHandler := gallery.NewHandler(galleryService, gate)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Gallery:   galleryHandler,
	}

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(appContext, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	appCancel()

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
