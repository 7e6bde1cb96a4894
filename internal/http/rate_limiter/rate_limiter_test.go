package rate_limiter

import (
	"testing"
	"time"
)

func TestLimiter_BurstThenDeny(t *testing.T) {
	l := New(1, 3)

	for i := range 3 {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed within burst", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("fourth request should be rate limited")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatal("other clients keep their own bucket")
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := New(5, 10)
	l.now = func() time.Time { return now }

	l.GetVisitor("idle")
	now = now.Add(10 * time.Minute)
	l.GetVisitor("active")

	if removed := l.Cleanup(5 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 idle client removed, got %d", removed)
	}
	if l.Len() != 1 {
		t.Fatalf("expected 1 client left, got %d", l.Len())
	}
}
