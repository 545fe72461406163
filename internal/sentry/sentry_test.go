package sentry

import (
	"testing"
	"time"
)

func TestInitializeEmptyTokenDisables(t *testing.T) {
	if err := Initialize(Config{Token: ""}); err != nil {
		t.Errorf("empty token should disable tracking, got error %v", err)
	}
	if IsEnabled() {
		t.Error("IsEnabled() should be false without a token")
	}
}

func TestInitializeMissingHost(t *testing.T) {
	if err := Initialize(Config{Token: "tok"}); err == nil {
		t.Error("expected error when host is missing")
	}
}

func TestInitializeValidConfig(t *testing.T) {
	// Not parallel: the SDK keeps global state.
	err := Initialize(Config{
		Token:       "tok",
		Host:        "errors.betterstack.com",
		Environment: "test",
	})
	if err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if !IsEnabled() {
		t.Error("IsEnabled() should be true after initialization")
	}
	Flush(time.Second)
}
