// Package main provides the HTU Info Bot server entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/omarmubaidin/htu-infobot-go/internal/buildinfo"
	"github.com/omarmubaidin/htu-infobot-go/internal/chat"
	"github.com/omarmubaidin/htu-infobot-go/internal/config"
	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	"github.com/omarmubaidin/htu-infobot-go/internal/logger"
	"github.com/omarmubaidin/htu-infobot-go/internal/metrics"
	"github.com/omarmubaidin/htu-infobot-go/internal/ratelimit"
	"github.com/omarmubaidin/htu-infobot-go/internal/sentry"
	"github.com/omarmubaidin/htu-infobot-go/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithShipping(cfg.LogLevel, cfg.BetterStackToken)
	log.WithField("version", buildinfo.Version).Info("Starting HTU Info Bot Server")

	if err := sentry.Initialize(sentry.Config{
		Token:       cfg.SentryToken,
		Host:        cfg.SentryHost,
		Environment: cfg.SentryEnvironment,
		Release:     buildinfo.Version,
	}); err != nil {
		log.WithError(err).Warn("Failed to initialize error tracking")
	} else if sentry.IsEnabled() {
		log.Info("Error tracking initialized")
	}

	// Datasets are loaded once at startup; a missing or corrupt file
	// degrades to an empty dataset rather than aborting.
	catalog, directory := dataset.Load(context.Background(), cfg.CatalogPath(), cfg.OfficeHoursPath(), log)
	log.WithField("courses", catalog.CourseCount()).
		WithField("professors", len(directory)).
		Info("Datasets loaded")

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewBuildInfoCollector())

	m := metrics.New(registry)
	m.DatasetSize.WithLabelValues("courses").Set(float64(catalog.CourseCount()))
	m.DatasetSize.WithLabelValues("professors").Set(float64(len(directory)))

	sessions := session.NewStore(session.StoreConfig{IdleTTL: cfg.SessionIdleTTL})
	defer sessions.Stop()

	limiter := ratelimit.NewPerClient(ratelimit.PerClientConfig{
		Burst:         cfg.RateLimitBurst,
		RefillRate:    cfg.RateLimitRefillPerSec,
		CleanupPeriod: 5 * time.Minute,
	})
	limiter.OnDrop(func(string) {
		m.RateLimiterDropped.WithLabelValues("per_ip").Inc()
	})
	defer limiter.Stop()

	service := chat.NewService(catalog, directory, sessions, m, log)

	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.AllowedOrigins))
	router.Use(sentryMiddleware())

	setupRoutes(router, cfg, service, catalog, directory, sessions, limiter, registry, log)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Keep the active-session gauge fresh without instrumenting every
	// store mutation.
	gaugeCtx, gaugeCancel := context.WithCancel(context.Background())
	defer gaugeCancel()
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-gaugeCtx.Done():
				return
			case <-ticker.C:
				m.ActiveSessions.Set(float64(sessions.Len()))
			}
		}
	}()

	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	gaugeCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	sentry.Flush(2 * time.Second)
	log.Info("Server stopped")
}
