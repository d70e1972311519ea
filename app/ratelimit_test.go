package app

import (
	"testing"
	"time"
)

func TestLimiterWindowSequence(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLimiter()
	l.now = func() time.Time { return now }

	want := []bool{true, true, true, false}
	for i, expected := range want {
		got := l.Allow("generate:u1", 3, time.Minute)
		if got != expected {
			t.Fatalf("call %d: Allow = %v, want %v", i+1, got, expected)
		}
	}

	// Once the window elapses the next call opens a fresh one.
	now = now.Add(time.Minute + time.Second)
	if !l.Allow("generate:u1", 3, time.Minute) {
		t.Fatalf("Allow after window elapsed = false, want true")
	}
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := NewLimiter()

	for i := 0; i < 3; i++ {
		if !l.Allow("generate:u1", 3, time.Minute) {
			t.Fatalf("call %d for u1 rejected", i+1)
		}
	}
	if l.Allow("generate:u1", 3, time.Minute) {
		t.Fatalf("u1 should be exhausted")
	}
	if !l.Allow("generate:u2", 3, time.Minute) {
		t.Fatalf("u2 should not share u1's window")
	}
	if !l.Allow("validate:u1", 10, time.Minute) {
		t.Fatalf("validate window should not share the generate window")
	}
}

func TestLimiterReset(t *testing.T) {
	l := NewLimiter()

	for i := 0; i < 3; i++ {
		l.Allow("k", 3, time.Minute)
	}
	if l.Allow("k", 3, time.Minute) {
		t.Fatalf("expected k to be exhausted before reset")
	}
	l.Reset()
	if !l.Allow("k", 3, time.Minute) {
		t.Fatalf("Allow after Reset = false, want true")
	}
}
