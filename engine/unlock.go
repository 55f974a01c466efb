package engine

import (
	"github.com/lixenwraith/undertow/event"
	"github.com/lixenwraith/undertow/parameter"
	"github.com/lixenwraith/undertow/vmath"
)

// Unlocks are the interaction-earned states. The two booleans are one-way
// latches; BeamResonance is the one deliberately reversible signal in the
// set, a held note rather than an achievement.
type Unlocks struct {
	GuideFishUnlocked  bool
	DataPanelsExpanded bool
	BeamResonance      float64
}

// unlockTracker accumulates qualifying behavior and flips the latches.
type unlockTracker struct {
	latches Unlocks

	// lingerSeconds only grows, and only while linger qualifies after the
	// settling period; it is never decremented
	lingerSeconds float64
}

func (u *unlockTracker) update(ch *Channels, raw *RawSample, uptime, dt float64) (latched []event.Latch) {
	if !u.latches.GuideFishUnlocked &&
		uptime > parameter.GuideFishEligibleUptime &&
		ch.Linger > parameter.GuideFishLingerFloor {
		u.lingerSeconds += dt
		if u.lingerSeconds >= parameter.GuideFishCumulativeSeconds {
			u.latches.GuideFishUnlocked = true
			latched = append(latched, event.LatchGuideFish)
		}
	}

	if !u.latches.DataPanelsExpanded &&
		ch.CursorDwelling &&
		ch.CursorDwellSeconds > parameter.DataPanelDwellSeconds {
		u.latches.DataPanelsExpanded = true
		latched = append(latched, event.LatchDataPanels)
	}

	centered := vmath.Dist(raw.PointerX, raw.PointerY, 0.5, 0.5) < parameter.BeamRadius
	if centered && ch.MouseIntensity > parameter.BeamIntensityFloor {
		u.latches.BeamResonance += dt * parameter.BeamRiseRate
	} else {
		u.latches.BeamResonance -= dt * parameter.BeamDecayRate
	}
	u.latches.BeamResonance = vmath.Clamp01(u.latches.BeamResonance)

	return latched
}
