package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering and simulation tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxTickDelta caps the play time credited to a single tick after a stall
	MaxTickDelta = 100 * time.Millisecond

	// SplashDelay is how long the splash screen stays before HOME is reachable
	SplashDelay = 2 * time.Second
)

// Event Queue Limits
const (
	// EventQueueSize is the ring buffer size of the event queue, power of two
	EventQueueSize = 64

	// EventBufferMask wraps ring buffer indices
	EventBufferMask = EventQueueSize - 1

	// MaxDispatchRounds bounds cascaded event dispatch within one call
	MaxDispatchRounds = 16
)
