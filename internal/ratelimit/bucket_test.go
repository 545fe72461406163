package ratelimit

import (
	"testing"
	"time"
)

func TestBucketBurstThenDeny(t *testing.T) {
	b := NewBucket(3, 0.001)

	for i := 0; i < 3; i++ {
		if !b.Allow() {
			t.Fatalf("request %d within burst should be allowed", i)
		}
	}
	if b.Allow() {
		t.Fatal("request beyond burst should be denied")
	}
}

func TestBucketRefills(t *testing.T) {
	b := NewBucket(1, 100) // 1 token every 10ms

	if !b.Allow() {
		t.Fatal("first request should be allowed")
	}
	if b.Allow() {
		t.Fatal("second immediate request should be denied")
	}

	time.Sleep(20 * time.Millisecond)
	if !b.Allow() {
		t.Fatal("request after refill should be allowed")
	}
}

func TestBucketIdle(t *testing.T) {
	b := NewBucket(1, 1000)

	if !b.Idle() {
		t.Fatal("fresh bucket is at capacity")
	}
	b.Allow()
	if b.Idle() {
		t.Fatal("bucket with a consumed token is not idle")
	}

	time.Sleep(5 * time.Millisecond)
	if !b.Idle() {
		t.Fatal("bucket should be idle again after refilling")
	}
}

func TestBucketReset(t *testing.T) {
	b := NewBucket(2, 0.001)
	b.Allow()
	b.Allow()

	b.Reset()
	if got := b.Available(); got < 2 {
		t.Fatalf("Available() = %v after Reset, want 2", got)
	}
}

func TestBucketConcurrentAccess(t *testing.T) {
	b := NewBucket(100, 0.001)

	done := make(chan int)
	for i := 0; i < 10; i++ {
		go func() {
			allowed := 0
			for j := 0; j < 20; j++ {
				if b.Allow() {
					allowed++
				}
			}
			done <- allowed
		}()
	}

	total := 0
	for i := 0; i < 10; i++ {
		total += <-done
	}
	if total != 100 {
		t.Fatalf("allowed %d requests total, want exactly 100", total)
	}
}
