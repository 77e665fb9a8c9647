// Package clock provides the scheduling capability the game loop runs on:
// "call fn after d" plus cancellation. Real uses runtime timers; Manual is
// advanced explicitly so loops can be driven without real time passing.
package clock

import (
	"sort"
	"sync"
	"time"
)

// Timer is a pending callback registration.
type Timer interface {
	// Stop cancels the callback. Returns false if it already fired or was stopped.
	Stop() bool
}

// Scheduler registers one-shot delayed callbacks.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real schedules on the runtime timer heap. Callbacks run on their own goroutine.
type Real struct{}

// AfterFunc implements Scheduler.
func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

var _ Scheduler = Real{}

// Manual is a Scheduler driven by Advance. Callbacks run synchronously on
// the goroutine calling Advance, in due-time order (ties in registration order).
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m   *Manual
	at  time.Duration
	seq uint64
	fn  func()
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Stop implements Timer.
func (t *manualTimer) Stop() bool {
	t.m.mu.Lock()
	defer t.m.mu.Unlock()
	for i, p := range t.m.pending {
		if p == t {
			t.m.pending = append(t.m.pending[:i], t.m.pending[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves time forward by d, firing every callback that falls due.
// Callbacks registered while advancing fire too if they are due before the end.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	end := m.now + d
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDueLocked(end)
		if next == nil {
			m.now = end
			m.mu.Unlock()
			return
		}
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

// popDueLocked removes and returns the earliest timer due at or before end.
func (m *Manual) popDueLocked(end time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.Slice(m.pending, func(i, j int) bool {
		if m.pending[i].at != m.pending[j].at {
			return m.pending[i].at < m.pending[j].at
		}
		return m.pending[i].seq < m.pending[j].seq
	})
	first := m.pending[0]
	if first.at > end {
		return nil
	}
	m.pending = m.pending[1:]
	return first
}

// Now returns the elapsed manual time.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of registered callbacks that have not fired.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

var _ Scheduler = (*Manual)(nil)
