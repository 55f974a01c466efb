package parameter

// Zone Transition Gate Hysteresis
const (
	// GateLockRushThreshold locks the gate the moment a transition is
	// requested while rush exceeds it
	GateLockRushThreshold = 0.4

	// GateUnlockRushCeiling and GateUnlockLingerFloor together define the
	// calm condition required before the gate may reopen
	GateUnlockRushCeiling = 0.15
	GateUnlockLingerFloor = 0.3

	// GateUnlockHoldSeconds is how long the calm condition must hold
	// continuously; any interruption resets the timer to zero
	GateUnlockHoldSeconds = 0.4
)
