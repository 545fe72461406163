// Package sentry wraps Sentry SDK initialization for Better Stack error
// tracking. The DSN is assembled from a token and ingesting host so
// deployments only configure two values.
package sentry

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Config holds the error-tracking settings.
type Config struct {
	// Token is the Better Stack Errors application token. Empty token
	// disables error tracking entirely.
	Token string

	// Host is the ingesting host, e.g. "errors.betterstack.com".
	Host string

	// Environment tags events with the deployment environment.
	Environment string

	// Release tags events with the running version.
	Release string

	// SampleRate is the fraction of errors reported (0 defaults to 1.0).
	SampleRate float64

	// Debug turns on SDK debug output.
	Debug bool
}

// Initialize configures the global Sentry client. A missing token is not
// an error; the service simply runs without error tracking.
func Initialize(cfg Config) error {
	if cfg.Token == "" {
		return nil
	}
	if cfg.Host == "" {
		return fmt.Errorf("sentry host is required when token is provided")
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}

	// Better Stack ignores the project ID but the SDK requires one.
	dsn := fmt.Sprintf("https://%s@%s/1", cfg.Token, cfg.Host)

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		SampleRate:       sampleRate,
		Debug:            cfg.Debug,
		AttachStacktrace: true,
	})
}

// IsEnabled reports whether a client was initialized.
func IsEnabled() bool {
	return sentry.CurrentHub().Client() != nil
}

// CaptureException reports an error.
func CaptureException(err error) {
	sentry.CaptureException(err)
}

// CaptureExceptionWithContext reports an error through the hub attached
// to the request context when one exists.
func CaptureExceptionWithContext(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}

// Flush blocks until buffered events are delivered or the timeout
// expires. Call during shutdown.
func Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}
