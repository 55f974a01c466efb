package engine

import (
	"math"

	"github.com/lixenwraith/undertow/parameter"
	"github.com/lixenwraith/undertow/vmath"
)

// Channels are the smoothed, bounded intent signals consumers poll each
// frame. Every field is re-clamped to its declared range on every update;
// values persist for the engine lifetime and are never reset.
type Channels struct {
	// Rush reads how hard the user is pushing through, 0..1
	Rush float64

	// Linger saturates with scroll stillness over three seconds, 0..1
	Linger float64

	// Hesitation is a smoothed view of scroll direction reversals, 0..1
	Hesitation float64

	// MouseIntensity tracks pointer movement energy, 0..1
	MouseIntensity float64

	// CursorDwelling latches once the pointer has been still past the
	// dwell threshold; the dwell coordinates freeze at the last move and
	// CursorDwellSeconds runs from the moment dwelling began
	CursorDwelling     bool
	CursorDwellX       float64
	CursorDwellY       float64
	CursorDwellSeconds float64

	// ExplorationRhythm is a second-order mood: negative when rushing,
	// positive when lingering, -1..1
	ExplorationRhythm float64

	// TimeScale is a global animation-time multiplier for consumers,
	// 0.3..2.0, neutral at 1
	TimeScale float64
}

// synthesizer recomputes the channels from the raw sample once per tick.
type synthesizer struct {
	ch Channels
}

func (s *synthesizer) init() {
	s.ch.TimeScale = 1
}

func (s *synthesizer) update(raw *RawSample, dt float64) {
	rushTarget := math.Min(math.Abs(raw.ScrollVelocity)/parameter.RushVelocityDivisor, 1)
	s.ch.Rush = vmath.Clamp01(vmath.ApproachExp(s.ch.Rush, rushTarget, dt, parameter.RushTau))

	// Linger is unsmoothed: it is defined as time since scroll, not a rate
	s.ch.Linger = math.Min(raw.SecondsSinceScroll/parameter.LingerSaturationSeconds, 1)

	hesTarget := raw.DirectionChanges * parameter.HesitationGain
	s.ch.Hesitation = vmath.Clamp01(vmath.ApproachExp(s.ch.Hesitation, hesTarget, dt, parameter.HesitationTau))

	miTarget := raw.PointerVelocity / parameter.MouseIntensityDivisor
	s.ch.MouseIntensity = vmath.Clamp01(vmath.ApproachExp(s.ch.MouseIntensity, miTarget, dt, parameter.MouseIntensityTau))

	s.updateDwell(raw)

	rhythmTarget := vmath.Clamp(-s.ch.Rush+s.ch.Linger+parameter.RhythmHesitationWeight*s.ch.Hesitation, -1, 1)
	s.ch.ExplorationRhythm = vmath.Clamp(vmath.ApproachExp(s.ch.ExplorationRhythm, rhythmTarget, dt, parameter.RhythmTau), -1, 1)

	tsTarget := 1 + parameter.TimeScaleRushWeight*s.ch.Rush - parameter.TimeScaleLingerWeight*s.ch.Linger
	s.ch.TimeScale = vmath.Clamp(vmath.ApproachExp(s.ch.TimeScale, tsTarget, dt, parameter.TimeScaleTau), parameter.TimeScaleMin, parameter.TimeScaleMax)
}

func (s *synthesizer) updateDwell(raw *RawSample) {
	if raw.PointerIdleSeconds <= parameter.DwellThresholdSeconds {
		s.ch.CursorDwelling = false
		s.ch.CursorDwellSeconds = 0
		return
	}
	if !s.ch.CursorDwelling {
		// Any pointer move resets the idle clock, so the position here is
		// the one recorded at the last move before stillness set in
		s.ch.CursorDwelling = true
		s.ch.CursorDwellX = raw.PointerX
		s.ch.CursorDwellY = raw.PointerY
	}
	s.ch.CursorDwellSeconds = raw.PointerIdleSeconds - parameter.DwellThresholdSeconds
}
