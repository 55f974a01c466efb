package engine

import "github.com/lixenwraith/undertow/parameter"

// transitionGate is the hysteresis stage between "a zone change is wanted"
// and "a zone change may commit". Rushing locks it; only a sustained calm
// stretch reopens it, so noisy scroll input cannot flap the world.
type transitionGate struct {
	locked    bool
	lockTimer float64
}

// request answers whether a pending transition may commit right now.
// Requesting during a rush locks the gate; lockedNow reports that edge.
func (g *transitionGate) request(ch *Channels) (allowed, lockedNow bool) {
	if ch.Rush > parameter.GateLockRushThreshold {
		lockedNow = !g.locked
		g.locked = true
		g.lockTimer = 0
		return false, lockedNow
	}
	if g.locked {
		return false, false
	}
	return true, false
}

// update runs the per-tick unlock dwell. The calm condition must hold
// continuously; any interruption forfeits the accumulated time.
func (g *transitionGate) update(ch *Channels, dt float64) (unlockedNow bool) {
	if !g.locked {
		return false
	}
	if ch.Rush < parameter.GateUnlockRushCeiling && ch.Linger > parameter.GateUnlockLingerFloor {
		g.lockTimer += dt
		if g.lockTimer > parameter.GateUnlockHoldSeconds {
			g.locked = false
			g.lockTimer = 0
			return true
		}
		return false
	}
	g.lockTimer = 0
	return false
}
