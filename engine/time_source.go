package engine

import (
	"sync"
	"time"
)

// TimeSource supplies wall time and frame pacing sleeps to the frame loop
type TimeSource interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemTime reads the monotonic system clock
type SystemTime struct{}

// NewSystemTime creates a time source backed by time.Now
func NewSystemTime() *SystemTime {
	return &SystemTime{}
}

// Now returns the current time with monotonic clock reading
func (SystemTime) Now() time.Time {
	return time.Now()
}

// Sleep blocks the caller for d
func (SystemTime) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// ManualTime is a controllable time source for tests
// Sleep advances the clock instead of blocking
type ManualTime struct {
	mu      sync.RWMutex
	current time.Time
	slept   time.Duration
}

// NewManualTime creates a manual time source starting at start
func NewManualTime(start time.Time) *ManualTime {
	return &ManualTime{current: start}
}

// Now returns the current manual time
func (m *ManualTime) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set jumps the clock to t, which may lie in the past
func (m *ManualTime) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the clock forward by d
func (m *ManualTime) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}

// Sleep advances the clock by d and records the total slept time
func (m *ManualTime) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
	m.slept += d
}

// Slept returns the accumulated duration passed to Sleep
func (m *ManualTime) Slept() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.slept
}
