package parameter

// Raw Signal Sampling
const (
	// ScrollMinEventDt floors the inter-event interval (seconds) before
	// velocity/acceleration division, so coalesced events with near-zero
	// spacing produce large-but-finite derivatives instead of Inf/NaN
	ScrollMinEventDt = 0.001

	// PointerSampleBaseline scales per-event pointer deltas to a
	// per-second-equivalent magnitude (~60Hz event cadence assumed)
	PointerSampleBaseline = 60.0

	// SignalDecayTau is the aging time constant (seconds) for direction
	// change counts and pointer velocity; equivalent to a x0.95 per-tick
	// multiplier at 60Hz
	SignalDecayTau = 0.33
)

// Scroll History Window
const (
	// HistoryWindowSeconds bounds the sliding window of retained scroll samples
	HistoryWindowSeconds = 3.0

	// HistoryCapacity is the fixed ring capacity; at 3s retention this
	// absorbs event bursts well past typical scroll event rates
	HistoryCapacity = 512
)
