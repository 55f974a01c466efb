package engine

import (
	"time"

	"github.com/lixenwraith/undertow/parameter"
	"github.com/lixenwraith/undertow/vmath"
)

// RawSample holds the event-driven raw input quantities before any smoothing.
// Written only by input callbacks and decay; read by the synthesizer each tick.
type RawSample struct {
	ScrollPosition     float64 // px
	ScrollDelta        float64 // px, last event
	ScrollVelocity     float64 // px/s, signed
	ScrollAcceleration float64 // px/s^2

	// DirectionChanges counts scroll sign flips and ages out continuously,
	// so a burst of reversals fades within a couple of seconds
	DirectionChanges float64

	PointerX, PointerY float64 // normalized viewport coordinates
	PointerVelocity    float64 // per-second-equivalent move magnitude, aging
	PointerIdleSeconds float64

	SecondsSinceScroll float64
}

// sampler performs pure event-driven bookkeeping: derivatives, flip counts,
// idle clocks, and the bounded scroll history window.
type sampler struct {
	raw RawSample

	lastScrollAt time.Time
	history      historyRing
}

func (s *sampler) init(now time.Time) {
	s.lastScrollAt = now
}

// onScroll ingests a scroll offset change. The inter-event interval is
// floored before division so coalesced events cannot produce Inf/NaN;
// downstream clamps bound whatever large-but-finite value results.
func (s *sampler) onScroll(position float64, now time.Time) {
	dt := now.Sub(s.lastScrollAt).Seconds()
	if dt < parameter.ScrollMinEventDt {
		dt = parameter.ScrollMinEventDt
	}

	delta := position - s.raw.ScrollPosition
	velocity := delta / dt

	s.raw.ScrollAcceleration = (velocity - s.raw.ScrollVelocity) / dt
	if delta*s.raw.ScrollDelta < 0 {
		s.raw.DirectionChanges++
	}
	s.raw.ScrollDelta = delta
	s.raw.ScrollVelocity = velocity
	s.raw.ScrollPosition = position
	s.raw.SecondsSinceScroll = 0
	s.lastScrollAt = now

	s.history.push(ScrollSample{At: now, Position: position, Velocity: velocity})
	s.history.dropBefore(now.Add(-time.Duration(parameter.HistoryWindowSeconds * float64(time.Second))))
}

// onPointerMove updates the normalized pointer position and its
// per-second-equivalent velocity, and resets the idle clock.
func (s *sampler) onPointerMove(x, y float64) {
	x = vmath.Clamp01(x)
	y = vmath.Clamp01(y)

	dist := vmath.Dist(s.raw.PointerX, s.raw.PointerY, x, y)
	s.raw.PointerVelocity = dist * parameter.PointerSampleBaseline
	s.raw.PointerX = x
	s.raw.PointerY = y
	s.raw.PointerIdleSeconds = 0
}

// decay ages the flip count and pointer velocity, and grows the idle clocks.
func (s *sampler) decay(dt float64) {
	s.raw.DirectionChanges = vmath.DecayExp(s.raw.DirectionChanges, dt, parameter.SignalDecayTau)
	s.raw.PointerVelocity = vmath.DecayExp(s.raw.PointerVelocity, dt, parameter.SignalDecayTau)
	s.raw.PointerIdleSeconds += dt
	s.raw.SecondsSinceScroll += dt
}
