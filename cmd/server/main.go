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

	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"

	"github.com/neexbeast/quietseason/internal/api"
	"github.com/neexbeast/quietseason/internal/cache"
	"github.com/neexbeast/quietseason/internal/catalog"
	"github.com/neexbeast/quietseason/internal/config"
	"github.com/neexbeast/quietseason/internal/metrics"
	"github.com/neexbeast/quietseason/internal/ranking"
	"github.com/neexbeast/quietseason/internal/storage"
	"github.com/neexbeast/quietseason/internal/venue"
	"github.com/neexbeast/quietseason/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	log := setupLogger(cfg)
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

// setupLogger returns a colored tint logger in development and JSON otherwise.
func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	if cfg.IsDevelopment() {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx := context.Background()
	checks := map[string]api.Pinger{}

	// Metrics are optional; a nil *metrics.Metrics records nothing.
	var rec *metrics.Metrics
	var metricsSrv *http.Server
	if cfg.MetricsPort != "" {
		mp, handler, err := metrics.NewPrometheusProvider()
		if err != nil {
			return fmt.Errorf("setting up metrics: %w", err)
		}
		defer func() { _ = mp.Shutdown(context.Background()) }()
		otel.SetMeterProvider(mp)

		rec, err = metrics.New(mp.Meter(metrics.MeterName))
		if err != nil {
			return fmt.Errorf("creating metric instruments: %w", err)
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = &http.Server{Addr: ":" + cfg.MetricsPort, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info("metrics server starting", "port", cfg.MetricsPort)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", "err", err)
			}
		}()
	}

	// The catalog comes from Postgres when configured, otherwise from the built-in table.
	var crowdCatalog *catalog.Catalog
	if cfg.DatabaseURL != "" {
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if err := storage.RunMigrations(ctx, pool, migrations.FS); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")

		crowdCatalog, err = storage.NewRepository(pool).LoadCatalog(ctx, catalog.DefaultProfiles())
		if err != nil {
			return fmt.Errorf("loading catalog from database: %w", err)
		}
		checks["db"] = pool
	} else {
		var err error
		crowdCatalog, err = catalog.New(catalog.DefaultProfiles())
		if err != nil {
			return fmt.Errorf("building catalog: %w", err)
		}
	}
	log.Info("catalog loaded", "destinations", len(crowdCatalog.Names()))

	var venueCache venue.Cache
	if cfg.RedisURL != "" {
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = redisClient.Close() }()

		venueCache = cache.NewVenueCache(redisClient, cfg.VenueCacheTTL)
		checks["redis"] = &redisPingerAdapter{client: redisClient}
	}

	var provider venue.Provider
	if cfg.FoursquareAPIKey != "" {
		provider = venue.NewFoursquareClientWithURL(cfg.FoursquareBaseURL, cfg.FoursquareAPIKey)
	} else {
		log.Warn("FOURSQUARE_API_KEY not set, live crowds use synthetic venues")
	}

	// Wire dependencies.
	fetcher := venue.NewFetcher(provider, nil, venueCache, rec, log)
	estimator := venue.NewEstimator(fetcher, venue.SampleCities(), rec, log)
	handlers := api.NewHandlers(crowdCatalog, estimator, ranking.New(crowdCatalog), log)

	router := api.NewRouter(handlers, api.RouterOptions{
		CORSOrigins:       cfg.CORSOrigins,
		RequestsPerMinute: cfg.RateLimitPerMinute,
		Checks:            checks,
	}, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorLog:     slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("metrics server shutdown", "err", err)
		}
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// redisPingerAdapter adapts redis.Client to the api.Pinger interface.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
