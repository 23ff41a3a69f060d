// Package main is the entry point for the people registry API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/people-registry/internal/cache"
	"github.com/pkordes/people-registry/internal/config"
	"github.com/pkordes/people-registry/internal/handler"
	"github.com/pkordes/people-registry/internal/handler/gen"
	"github.com/pkordes/people-registry/internal/metrics"
	"github.com/pkordes/people-registry/internal/middleware"
	"github.com/pkordes/people-registry/internal/repo"
	"github.com/pkordes/people-registry/internal/service"
	"github.com/pkordes/people-registry/migrations"
	"github.com/pkordes/people-registry/spec"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// run wires every dependency and serves until ctx is cancelled.
func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	// --- Database ---------------------------------------------------------
	// The pool is created once here and handed to the repo; nothing else
	// reaches for it.
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("parse database url: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		poolCfg.MaxConns = cfg.DBMaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return fmt.Errorf("create database pool: %w", err)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("database connection established", "max_conns", poolCfg.MaxConns)

	if cfg.MigrateOnStart {
		db := stdlib.OpenDBFromPool(pool)
		n, err := migrations.Up(ctx, db)
		_ = db.Close()
		if err != nil {
			return err
		}
		logger.Info("migrations applied", "count", n)
	}

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// --- Service ----------------------------------------------------------
	opts := []service.Option{
		service.WithMetrics(metrics.New(reg)),
		service.WithLogger(logger),
	}
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		opts = append(opts, service.WithCache(cache.NewPersonCache(client, cfg.CacheTTL)))
		logger.Info("person cache enabled", "ttl", cfg.CacheTTL.String())
	}
	people := service.NewPersonService(repo.NewPersonRepo(pool), opts...)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
	// Recoverer → CORS → MaxBodySize.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(middleware.NewMetricsHandler(reg))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts the StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	srv := handler.NewServer(people, pool)
	gen.HandlerWithOptions(gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(logger)), gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.ParamErrorHandler(logger),
	})

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		// Wait for a signal or a listener failure, then give in-flight
		// requests up to shutdownTimeout to complete.
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
