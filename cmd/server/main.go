package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"

	"github.com/Belphemur/NewReleases/internal/cache"
	"github.com/Belphemur/NewReleases/internal/client"
	"github.com/Belphemur/NewReleases/internal/config"
	grpcserver "github.com/Belphemur/NewReleases/internal/grpc"
	"github.com/Belphemur/NewReleases/internal/metrics"
	"github.com/Belphemur/NewReleases/internal/services"
)

const (
	defaultCacheTTL = 5 * time.Minute
	pingTimeout     = 10 * time.Second
	sentryFlush     = 2 * time.Second
)

// cacheLogger forwards cache backend errors to zerolog
type cacheLogger struct {
	logger zerolog.Logger
}

func (l cacheLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}

func main() {
	cfg := config.GetConfig()
	logger := config.GetLogger()

	if err := config.Validate(cfg); err != nil {
		logger.Fatal().Err(err).Msg("Invalid configuration")
	}

	logger.Info().
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("emby_url", cfg.Emby.URL).
		Str("emby_user_id", cfg.Emby.UserID).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Str("cache_type", cfg.Cache.Type).
		Msg("Application started with configuration")

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to initialize Sentry, continuing without error reporting")
		} else {
			defer sentry.Flush(sentryFlush)
		}
	}

	snapshots, err := cache.New(cfg.Cache.Type, cache.ProviderConfig{
		Size:          cfg.Cache.Size,
		TTL:           config.ParseDuration(cfg.Cache.TTL, defaultCacheTTL),
		Logger:        cacheLogger{logger: logger},
		RedisAddress:  cfg.Cache.RedisAddress,
		RedisPassword: cfg.Cache.RedisPassword,
		RedisDB:       cfg.Cache.RedisDB,
		Group:         "snapshots",
	})
	if err != nil {
		logger.Fatal().Err(err).Str("type", cfg.Cache.Type).Msg("Failed to create snapshot cache")
	}
	defer func() {
		if err := snapshots.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close snapshot cache")
		}
	}()

	library := client.NewClient(cfg)
	defer library.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	if err := library.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Str("url", cfg.Emby.URL).Msg("Media server is not reachable yet")
	}
	cancel()

	releases := services.NewReleaseService(library, snapshots, cfg, time.Now)
	grpcServer := grpcserver.NewGRPCServer(releases)

	// Start Prometheus metrics HTTP server
	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Fatal().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer func() {
			if err := metricsServer.Shutdown(context.Background()); err != nil {
				logger.Error().Err(err).Msg("Failed to shutdown metrics server")
			}
		}()
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		logger.Fatal().Err(err).Str("address", address).Msg("Failed to create listener")
	}

	logger.Info().Str("address", address).Str("service", grpcserver.ServiceName).Msg("Starting gRPC server")

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		grpcServer.Drain()
	}()

	if err := grpcServer.Serve(listener); err != nil {
		logger.Fatal().Err(err).Msg("Failed to serve gRPC")
	}

	logger.Info().Msg("Server stopped gracefully")
}
