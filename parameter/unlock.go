package parameter

// Guide Fish Latch
const (
	// GuideFishLingerFloor is the linger level that counts toward the unlock
	GuideFishLingerFloor = 0.8

	// GuideFishCumulativeSeconds is the total (not necessarily continuous)
	// qualifying time required
	GuideFishCumulativeSeconds = 4.0

	// GuideFishEligibleUptime is the settling period; qualifying time is
	// only counted once engine uptime passes it
	GuideFishEligibleUptime = 20.0
)

// Data Panel Latch
const (
	// DataPanelDwellSeconds is the single-dwell duration that expands the panels
	DataPanelDwellSeconds = 2.0
)

// Beam Resonance
const (
	// BeamRadius is the normalized distance from screen center within which
	// resonance can build
	BeamRadius = 0.3

	// BeamIntensityFloor is the minimum mouse intensity for resonance to build
	BeamIntensityFloor = 0.2

	// BeamRiseRate and BeamDecayRate shape the held-note feel: quick to
	// swell, slow to fade
	BeamRiseRate  = 0.3
	BeamDecayRate = 0.1
)
