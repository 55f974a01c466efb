package parameter

import "time"

// Event Queue Sizing
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// Driving Loop Timing
const (
	// TickInterval is the reference consumer frame interval (~60 FPS)
	TickInterval = 16 * time.Millisecond
)

// Scroll Cadence Diagnostic
const (
	// CadenceBins is the resample grid size for the FFT; power of two
	CadenceBins = 64

	// CadenceMinSamples is the minimum history population before the
	// diagnostic reports anything
	CadenceMinSamples = 8
)
