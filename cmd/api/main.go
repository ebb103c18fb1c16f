// Copyright (c) 2026 ArtScope. All rights reserved.

// Command api is the entry point for the ArtScope HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to Redis when configured.
//  4. Build the collection client, reconciler and session registry.
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
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
	"time"

	"github.com/jenna9192/artscope/internal/api"
	"github.com/jenna9192/artscope/internal/browse"
	"github.com/jenna9192/artscope/internal/collection"
	"github.com/jenna9192/artscope/internal/platform/config"
	"github.com/jenna9192/artscope/internal/platform/constants"
	redisstore "github.com/jenna9192/artscope/internal/platform/redis"
	"github.com/jenna9192/artscope/internal/taxonomy"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

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
		slog.String("collection_base_url", cfg.CollectionBaseURL),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
	)

	// Root context for background workers; cancelled on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	startupCtx, startupCancel := context.WithTimeout(appCtx, 30*time.Second)
	defer startupCancel()

	// ── 3. Redis (optional) ───────────────────────────────────────────────
	rdb, err := redisstore.Connect(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")

	var cache collection.ObjectCache
	var checkCache func(context.Context) error
	if rdb != nil {
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()
		cache = collection.NewRedisObjectCache(rdb, cfg.CacheTTL)
		checkCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	client := collection.NewClient(collection.Options{
		BaseURL:   cfg.CollectionBaseURL,
		Timeout:   cfg.UpstreamTimeout,
		UserAgent: cfg.UserAgent,
		Cache:     cache,
		Logger:    log,
	})

	reconciler := browse.NewReconciler(client,
		browse.WithFetchDelay(cfg.FetchDelay),
		browse.WithLogger(log),
	)

	catalog := taxonomy.DefaultCatalog()
	registry := browse.NewRegistry(reconciler, catalog, cfg.SessionTTL, log)

	registryDone := make(chan struct{})
	go func() {
		registry.Run(appCtx)
		close(registryDone)
	}()

	// ── 5. Health handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckCache:    checkCache,
		CheckUpstream: client.Ping,
	}, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Taxonomy:   taxonomy.NewHandler(catalog),
		Collection: collection.NewHandler(client),
		Browse:     browse.NewHandler(registry, catalog),
	}

	server := api.NewServer(appCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	// Closing the sessions ends their event streams so Shutdown does not wait on them.
	appCancel()
	<-registryDone

	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
