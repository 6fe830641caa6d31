package middleware

import (
	"testing"
)

func TestTokenBucketAllowsWithinCapacity(t *testing.T) {
	tb := NewTokenBucket(1, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow() {
			t.Fatalf("request %d should be allowed within burst capacity", i+1)
		}
	}
}

func TestTokenBucketBlocksWhenDrained(t *testing.T) {
	tb := NewTokenBucket(0.001, 1)

	if !tb.Allow() {
		t.Fatal("first request should be allowed")
	}
	if tb.Allow() {
		t.Error("second immediate request should be blocked")
	}
}

func TestTokenBucketCapsAtCapacity(t *testing.T) {
	tb := NewTokenBucket(0.001, 2)

	tb.Allow()
	tb.Allow()
	if tb.Allow() {
		t.Error("bucket should be empty immediately after draining")
	}
}
