package engine

import (
	"math"
	"time"
)

// SimClock converts wall time into a whole number of fixed simulation steps
// plus the fraction of a step left over for render interpolation
// Owned by the frame loop, not safe for concurrent use
type SimClock struct {
	rate     float64 // steps per second
	maxSteps int

	last    time.Time
	pending float64 // unconsumed steps, always in [0,1) between calls
	dropped uint64
}

// NewSimClock creates a clock anchored at now
func NewSimClock(rateHz float64, maxSteps int, now time.Time) *SimClock {
	return &SimClock{
		rate:     rateHz,
		maxSteps: maxSteps,
		last:     now,
	}
}

// Advance accounts the time since the previous call and returns the steps to run
// A clock running backwards contributes no time
// Steps beyond maxSteps are discarded, the fractional part is kept
func (c *SimClock) Advance(now time.Time) (steps int, partial float64) {
	elapsed := now.Sub(c.last)
	if elapsed < 0 {
		elapsed = 0
	}
	c.last = now

	c.pending += elapsed.Seconds() * c.rate
	whole := math.Floor(c.pending)
	c.pending -= whole

	steps = int(whole)
	if steps > c.maxSteps {
		c.dropped += uint64(steps - c.maxSteps)
		steps = c.maxSteps
	}
	return steps, c.pending
}

// Reset re-anchors the clock at now and clears the fractional remainder
func (c *SimClock) Reset(now time.Time) {
	c.last = now
	c.pending = 0
}

// Partial returns the current fraction of a step in [0,1)
func (c *SimClock) Partial() float64 {
	return c.pending
}

// Dropped returns the total steps discarded by the catch-up clamp
func (c *SimClock) Dropped() uint64 {
	return c.dropped
}

// Rate returns the configured step rate
func (c *SimClock) Rate() float64 {
	return c.rate
}
