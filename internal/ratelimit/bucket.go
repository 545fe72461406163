// Package ratelimit throttles chat requests with a token bucket per
// client address.
package ratelimit

import (
	"sync"
	"time"
)

// Bucket is a token bucket. Tokens refill continuously at refillRate per
// second up to burst capacity; each allowed request consumes one token.
// Safe for concurrent use.
type Bucket struct {
	mu         sync.Mutex
	tokens     float64
	burst      float64
	refillRate float64
	lastRefill time.Time
}

// NewBucket creates a bucket that starts full.
func NewBucket(burst, refillRate float64) *Bucket {
	return &Bucket{
		tokens:     burst,
		burst:      burst,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// refill must be called with mu held.
func (b *Bucket) refill() {
	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.burst {
		b.tokens = b.burst
	}
	b.lastRefill = now
}

// Allow consumes one token if available. Non-blocking.
func (b *Bucket) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Available reports the current token count.
func (b *Bucket) Available() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	return b.tokens
}

// Idle reports whether the bucket has refilled back to capacity, meaning
// the client has not sent a request for at least burst/refillRate
// seconds. Idle buckets are eligible for eviction.
func (b *Bucket) Idle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	return b.tokens >= b.burst
}

// Reset refills the bucket to capacity.
func (b *Bucket) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.tokens = b.burst
	b.lastRefill = time.Now()
}
