// Package app implements the request orchestration for name generation
// and validation.
package app

import (
	"sync"
	"time"
)

type rateWindow struct {
	count   int
	resetAt time.Time
}

// Limiter is a process-local sliding-window counter keyed by caller-chosen
// strings. Counters are not persisted; a restart clears them, which is
// acceptable for abuse mitigation but not billing enforcement.
type Limiter struct {
	mu      sync.Mutex
	windows map[string]*rateWindow
	now     func() time.Time
}

func NewLimiter() *Limiter {
	return &Limiter{
		windows: make(map[string]*rateWindow),
		now:     time.Now,
	}
}

// Allow reports whether another event for key fits under limit within the
// current window. The first event after a window expires opens a new one.
func (l *Limiter) Allow(key string, limit int, window time.Duration) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.windows[key]
	if !ok || now.After(w.resetAt) {
		l.windows[key] = &rateWindow{count: 1, resetAt: now.Add(window)}
		return true
	}

	if w.count >= limit {
		return false
	}
	w.count++
	return true
}

// Reset drops all counters. Test hook.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.windows = make(map[string]*rateWindow)
}
