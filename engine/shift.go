package engine

import "github.com/lixenwraith/undertow/parameter"

// perceptionShift is the one-shot anomaly transient. armed guards the
// lifetime: once triggered it can never rearm, and once progress saturates
// it stays at 1 so late readers see "spent" rather than "in progress".
type perceptionShift struct {
	armed    bool
	active   bool
	progress float64
}

// trigger activates the transient. Idempotent; reports the first activation.
func (p *perceptionShift) trigger() bool {
	if p.armed {
		return false
	}
	p.armed = true
	p.active = true
	p.progress = 0
	return true
}

func (p *perceptionShift) update(dt float64) (completed bool) {
	if !p.active {
		return false
	}
	p.progress += dt * parameter.ShiftRatePerSecond
	if p.progress >= 1 {
		p.progress = 1
		p.active = false
		return true
	}
	return false
}
