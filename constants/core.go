package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the delta handed to the session after a stall (seconds)
	MaxFrameDelta = 0.1
)

// Event Queue Limits
const (
	// EventQueueSize is the most events a single drain returns, older ones are dropped
	EventQueueSize = 256
)
