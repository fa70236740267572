package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRateHz is the fixed simulation rate (one tick = 50ms)
	TickRateHz = 20

	// MaxTicksPerFrame caps catch-up after a stall, excess ticks are dropped
	MaxTicksPerFrame = 100

	// FrameRateCap is the render frame limit, purely a throughput governor
	FrameRateCap = 120

	// PauseSleep is how long the loop idles per iteration while paused
	PauseSleep = 100 * time.Millisecond

	// FpsWindow is the interval over which the fps counter is sampled
	FpsWindow = time.Second
)

// Input latching
const (
	// KeyHoldTicks is how many ticks a key event keeps its action held
	// Terminals report no release, auto-repeat refreshes the latch
	KeyHoldTicks = 8

	// EventChannelSize buffers terminal events between poller and frame loop
	EventChannelSize = 256

	// MaxEditsPerFrame bounds the one-shot edit queue
	MaxEditsPerFrame = 8
)

// Version shown in the HUD
const Version = "0.0.8a"
