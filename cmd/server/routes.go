// Package main provides the HTU Info Bot server entry point.
package main

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/omarmubaidin/htu-infobot-go/internal/chat"
	"github.com/omarmubaidin/htu-infobot-go/internal/config"
	"github.com/omarmubaidin/htu-infobot-go/internal/dataset"
	domerrors "github.com/omarmubaidin/htu-infobot-go/internal/errors"
	"github.com/omarmubaidin/htu-infobot-go/internal/httpctx"
	"github.com/omarmubaidin/htu-infobot-go/internal/logger"
	"github.com/omarmubaidin/htu-infobot-go/internal/ratelimit"
	"github.com/omarmubaidin/htu-infobot-go/internal/session"
)

// setupRoutes configures all HTTP routes.
func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	service *chat.Service,
	catalog dataset.Catalog,
	directory dataset.Directory,
	sessions *session.Store,
	limiter *ratelimit.PerClient,
	registry *prometheus.Registry,
	log *logger.Logger,
) {
	// Frontend: serve index.html at / when a static build is present,
	// otherwise answer with a plain status message.
	indexPath := filepath.Join(cfg.StaticDir, "index.html")
	if _, err := os.Stat(indexPath); err == nil {
		router.StaticFile("/", indexPath)
		router.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
	} else {
		log.WithField("path", indexPath).Info("No static frontend found, / serves a status message")
		router.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "HTU Info Bot is running.")
		})
	}

	// Liveness probe. Never checks dependencies, only that the process
	// responds.
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness probe reports dataset counts; the service still serves
	// with empty datasets, so readiness is informational rather than
	// gating.
	readyHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ready",
			"datasets": gin.H{
				"courses":    catalog.CourseCount(),
				"professors": len(directory),
			},
			"sessions": sessions.Len(),
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Chat endpoint.
	router.POST("/api/chat", rateLimitMiddleware(limiter), func(c *gin.Context) {
		var req chat.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			bindErr := fmt.Errorf("%w: %v", domerrors.ErrInvalidInput, err)
			log.WithRequestID(httpctx.GetRequestID(c.Request.Context())).
				WithError(bindErr).
				Warn("Rejected malformed chat request")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		ctx := httpctx.WithSessionID(c.Request.Context(), req.SessionID)
		c.JSON(http.StatusOK, service.Handle(ctx, req))
	})

	// Prometheus metrics, behind Basic Auth when a password is set.
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		router.GET("/metrics", metricsAuth(cfg.MetricsUsername, cfg.MetricsPassword), metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}

// metricsAuth guards the metrics endpoint with constant-time credential
// comparison.
func metricsAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 ||
			subtle.ConstantTimeCompare([]byte(pass), []byte(password)) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="metrics"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
