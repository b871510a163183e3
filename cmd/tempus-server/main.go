// Package main is the entry point for the Tempus Tracker server, an
// authenticated REST API for per-user time tracking.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/prn-tf/tempus-tracker/internal/auth"
	"github.com/prn-tf/tempus-tracker/internal/cache"
	"github.com/prn-tf/tempus-tracker/internal/cache/memory"
	rediscache "github.com/prn-tf/tempus-tracker/internal/cache/redis"
	"github.com/prn-tf/tempus-tracker/internal/config"
	"github.com/prn-tf/tempus-tracker/internal/handler"
	"github.com/prn-tf/tempus-tracker/internal/service"
	"github.com/prn-tf/tempus-tracker/internal/store"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*configPath)
	logger := newLogger(cfg.Logging)

	logger.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Str("environment", cfg.Environment).
		Msg("starting tempus tracker server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores are the only state; one instance each, handed to the
	// services by reference.
	users := store.NewUserStore()
	activities := store.NewActivityStore()

	revoked := newRevocationCache(ctx, cfg, logger)
	defer func() { _ = revoked.Close() }()

	authCfg := auth.Config{
		Secret:       cfg.Auth.SecretKey,
		CookieName:   cfg.Auth.CookieName,
		TokenExpiry:  cfg.Auth.TokenExpiry,
		CookieSecure: cfg.IsProduction(),
	}

	userService := service.NewUserService(users, cfg.Auth.BcryptCost, logger)
	authService := service.NewAuthService(users, revoked, authCfg, !cfg.IsProduction(), logger)
	activityService := service.NewActivityService(users, activities, logger)

	// Seed the first user outside production mode.
	if !cfg.IsProduction() {
		if _, err := userService.Create(cfg.Seed.Username, cfg.Seed.Password); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed user")
		}
		logger.Info().Str("username", cfg.Seed.Username).Msg("seeded user")
	}

	router := handler.NewRouter(handler.RouterConfig{
		AuthHandler:     handler.NewAuthHandler(authService, authCfg, logger),
		ActivityHandler: handler.NewActivityHandler(activityService, logger),
		AuthMiddleware:  auth.Middleware(authCfg, users, revoked, logger),
		Logger:          logger,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = startMetricsServer(cfg.Metrics, logger)
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown failed")
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("metrics server shutdown failed")
		}
	}
}

// newLogger builds the process logger from config.
func newLogger(cfg config.LoggingConfig) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}
	return logger.Level(level).With().Timestamp().Logger()
}

// newRevocationCache picks the token revocation backend: Redis when
// enabled, in-memory otherwise.
func newRevocationCache(ctx context.Context, cfg *config.Config, logger zerolog.Logger) cache.Cache {
	if !cfg.Redis.Enabled {
		return memory.NewCache()
	}

	c, err := rediscache.NewCache(ctx, rediscache.Options{
		Addr:        cfg.Redis.Addr(),
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr()).Msg("failed to connect to redis")
	}
	logger.Info().Str("addr", cfg.Redis.Addr()).Msg("connected to redis")
	return c
}

// startMetricsServer serves Prometheus metrics on its own listener.
func startMetricsServer(cfg config.MetricsConfig, logger zerolog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: mux,
	}

	go func() {
		logger.Info().Str("addr", server.Addr).Str("path", cfg.Path).Msg("metrics listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics server failed")
		}
	}()

	return server
}
