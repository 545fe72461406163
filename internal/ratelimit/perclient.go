package ratelimit

import (
	"sync"
	"time"
)

// PerClientConfig configures a PerClient limiter.
type PerClientConfig struct {
	Burst         float64       // tokens per client before throttling kicks in
	RefillRate    float64       // tokens refilled per second
	CleanupPeriod time.Duration // how often idle buckets are evicted
}

// PerClient rate-limits by an opaque client key, normally the remote IP.
// Each key gets its own bucket; buckets that refill back to capacity are
// evicted by a background loop so the map stays bounded.
type PerClient struct {
	mu      sync.RWMutex
	buckets map[string]*Bucket
	config  PerClientConfig
	onDrop  func(key string)
	stopCh  chan struct{}
}

// NewPerClient creates the limiter and starts its cleanup loop.
// Call Stop when the limiter is no longer needed.
func NewPerClient(cfg PerClientConfig) *PerClient {
	pc := &PerClient{
		buckets: make(map[string]*Bucket),
		config:  cfg,
		stopCh:  make(chan struct{}),
	}
	go pc.cleanupLoop()
	return pc
}

// OnDrop registers a callback invoked whenever a request is rejected.
// Must be set before the limiter starts serving traffic.
func (pc *PerClient) OnDrop(fn func(key string)) {
	pc.onDrop = fn
}

// Allow reports whether the client identified by key may proceed,
// consuming a token when it does. An empty key is never throttled.
func (pc *PerClient) Allow(key string) bool {
	if key == "" {
		return true
	}

	pc.mu.RLock()
	bucket, ok := pc.buckets[key]
	pc.mu.RUnlock()

	if !ok {
		pc.mu.Lock()
		bucket, ok = pc.buckets[key]
		if !ok {
			bucket = NewBucket(pc.config.Burst, pc.config.RefillRate)
			pc.buckets[key] = bucket
		}
		pc.mu.Unlock()
	}

	allowed := bucket.Allow()
	if !allowed && pc.onDrop != nil {
		pc.onDrop(key)
	}
	return allowed
}

// ActiveCount returns the number of tracked clients.
func (pc *PerClient) ActiveCount() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return len(pc.buckets)
}

func (pc *PerClient) cleanupLoop() {
	ticker := time.NewTicker(pc.config.CleanupPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-pc.stopCh:
			return
		case <-ticker.C:
			pc.mu.Lock()
			for key, bucket := range pc.buckets {
				if bucket.Idle() {
					delete(pc.buckets, key)
				}
			}
			pc.mu.Unlock()
		}
	}
}

// Stop terminates the cleanup loop. Safe to call more than once.
func (pc *PerClient) Stop() {
	select {
	case <-pc.stopCh:
	default:
		close(pc.stopCh)
	}
}
