package parameter

// Smoothing time constants, in seconds. Each is the dt-aware equivalent of
// a fixed per-tick EMA rate at 60Hz: tau = -1 / (60 * ln(1 - rate)).
const (
	// RushTau smooths the rush channel (per-tick rate 0.08)
	RushTau = 0.20

	// HesitationTau smooths the hesitation view of direction changes
	// (per-tick rate 0.05)
	HesitationTau = 0.33

	// MouseIntensityTau smooths pointer velocity (per-tick rate 0.1)
	MouseIntensityTau = 0.16

	// RhythmTau smooths exploration rhythm; deliberately slower than its
	// inputs, a second-order mood rather than a raw metric (per-tick rate 0.03)
	RhythmTau = 0.55

	// TimeScaleTau smooths the global time multiplier (per-tick rate 0.02)
	TimeScaleTau = 0.83
)

// Channel Mapping
const (
	// RushVelocityDivisor maps |scroll velocity| in px/s onto [0,1];
	// 2000 px/s and above reads as full rush
	RushVelocityDivisor = 2000.0

	// LingerSaturationSeconds is the scroll-idle time that reads as full linger
	LingerSaturationSeconds = 3.0

	// HesitationGain converts the decayed direction-change count into the
	// hesitation target before smoothing
	HesitationGain = 0.3

	// MouseIntensityDivisor maps normalized pointer velocity onto [0,1]
	MouseIntensityDivisor = 0.5

	// DwellThresholdSeconds is the pointer stillness needed before the
	// dwell state latches
	DwellThresholdSeconds = 1.2

	// RhythmHesitationWeight is hesitation's contribution to exploration rhythm
	RhythmHesitationWeight = 0.3
)

// Time Scale Bounds & Weights
const (
	TimeScaleMin = 0.3
	TimeScaleMax = 2.0

	// TimeScaleRushWeight speeds the world up under rushing
	TimeScaleRushWeight = 0.8

	// TimeScaleLingerWeight slows the world down under lingering
	TimeScaleLingerWeight = 0.5
)
