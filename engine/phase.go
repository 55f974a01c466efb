package engine

import (
	"math"

	"github.com/lixenwraith/undertow/parameter"
)

// Phase is one of the five ordered emotional stages. The index never
// regresses for the lifetime of the engine.
type Phase int

const (
	PhaseCuriosity Phase = iota
	PhaseUncertainty
	PhaseConfrontation
	PhaseRevelation
	PhaseTransformation
)

func (p Phase) String() string {
	switch p {
	case PhaseCuriosity:
		return "curiosity"
	case PhaseUncertainty:
		return "uncertainty"
	case PhaseConfrontation:
		return "confrontation"
	case PhaseRevelation:
		return "revelation"
	case PhaseTransformation:
		return "transformation"
	}
	return "unknown"
}

// phaseMachine accumulates a phase-specific blend of the intent channels
// until it saturates, then advances. Exactly one advance per update;
// the accumulator resets to zero on every advance, surplus is dropped.
type phaseMachine struct {
	index       Phase
	accumulator float64
}

// pulse applies the flat significant-interaction boost. Ignored once terminal.
func (m *phaseMachine) pulse() {
	if m.index == PhaseTransformation {
		return
	}
	m.accumulator += parameter.InteractionPulseBoost
}

// rate computes the per-second accumulation for the active phase from the
// live channels. Floored at zero: a phase never un-accumulates.
func (m *phaseMachine) rate(ch *Channels) float64 {
	var r float64
	switch m.index {
	case PhaseCuriosity:
		r = parameter.CuriosityRushWeight*ch.Rush + parameter.CuriosityMouseWeight*ch.MouseIntensity
		if ch.Hesitation > parameter.CuriosityHesitationGate {
			r += parameter.CuriosityHesitationBonus
		}
	case PhaseUncertainty:
		r = parameter.UncertaintyHesitationWeight*ch.Hesitation +
			parameter.UncertaintyLingerWeight*ch.Linger -
			parameter.UncertaintyRushPenalty*ch.Rush
	case PhaseConfrontation:
		r = parameter.ConfrontationMouseWeight*ch.MouseIntensity + parameter.ConfrontationRushWeight*ch.Rush
		if ch.CursorDwelling {
			r += parameter.ConfrontationDwellBonus
		}
	case PhaseRevelation:
		r = parameter.RevelationLingerWeight*ch.Linger + parameter.RevelationCalmWeight*(1-ch.Rush)
	case PhaseTransformation:
		return 0
	}
	if r < 0 {
		return 0
	}
	return r
}

func (m *phaseMachine) update(ch *Channels, dt float64) (advanced bool) {
	if m.index == PhaseTransformation {
		return false
	}
	m.accumulator += m.rate(ch) * dt
	if m.accumulator >= 1 {
		m.index++
		m.accumulator = 0
		return true
	}
	return false
}

// progress exposes the accumulator to consumers, pinned to 1 once terminal.
func (m *phaseMachine) progress() float64 {
	if m.index == PhaseTransformation {
		return 1
	}
	return math.Min(m.accumulator, 1)
}
