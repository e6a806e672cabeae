package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avvvet/supportchain/internal/cache"
	"github.com/avvvet/supportchain/internal/config"
	"github.com/avvvet/supportchain/internal/handlers"
	"github.com/avvvet/supportchain/internal/logging"
	"github.com/avvvet/supportchain/internal/metrics"
	"github.com/avvvet/supportchain/internal/transport"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = logger.Sync() }()

	logger = logger.With(zap.String("service", cfg.ServiceName))
	logger.Info("starting support chain service",
		zap.String("natsUrl", cfg.NatsURL),
		zap.String("subject", cfg.NatsRequestSubject),
		zap.Bool("cacheEnabled", cfg.CacheEnabled))

	store := openStore(cfg, logger)
	defer store.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	chainHandler := handlers.NewChainHandler(store, m, logger)

	natsTransport, err := transport.NewNATSTransport(cfg, chainHandler, logger)
	if err != nil {
		logger.Fatal("failed to initialize NATS transport", zap.Error(err))
	}
	defer natsTransport.Close()

	if err := natsTransport.Start(); err != nil {
		logger.Fatal("failed to start NATS transport", zap.Error(err))
	}

	logger.Info("support chain service is running")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Warn("metrics server shutdown", zap.Error(err))
	}

	if err := natsTransport.Close(); err != nil {
		logger.Warn("error closing NATS transport", zap.Error(err))
	}

	logger.Info("support chain service stopped")
}

// openStore falls back to no caching when Redis is disabled or unreachable.
func openStore(cfg *config.Config, logger *zap.Logger) cache.Store {
	if !cfg.CacheEnabled {
		return cache.NopStore{}
	}

	store, err := cache.NewRedisStore(context.Background(), cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, running without cache", zap.Error(err))
		return cache.NopStore{}
	}

	logger.Info("redis connected", zap.Duration("ttl", cfg.CacheTTL))
	return store
}
