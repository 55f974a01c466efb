package parameter

// Perception Shift Transient
const (
	// ShiftRatePerSecond advances shift progress while active;
	// 0.25/s saturates the transient in ~4 seconds
	ShiftRatePerSecond = 0.25
)
