package httpctx

import (
	"context"
	"testing"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID on empty context = %q, want empty", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("GetRequestID = %q, want req-123", got)
	}
}

func TestSessionID(t *testing.T) {
	t.Parallel()

	ctx := WithSessionID(context.Background(), "sess-abc")
	if got := GetSessionID(ctx); got != "sess-abc" {
		t.Errorf("GetSessionID = %q, want sess-abc", got)
	}
	if got := GetSessionID(context.Background()); got != "" {
		t.Errorf("GetSessionID on empty context = %q, want empty", got)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	ctx := WithClientIP(context.Background(), "192.0.2.7")
	if got := GetClientIP(ctx); got != "192.0.2.7" {
		t.Errorf("GetClientIP = %q, want 192.0.2.7", got)
	}
}

func TestKeysDoNotCollide(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req")
	ctx = WithSessionID(ctx, "sess")
	ctx = WithClientIP(ctx, "ip")

	if GetRequestID(ctx) != "req" || GetSessionID(ctx) != "sess" || GetClientIP(ctx) != "ip" {
		t.Error("values must be independent per key")
	}
}
