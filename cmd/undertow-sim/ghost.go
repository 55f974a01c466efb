package main

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/lixenwraith/undertow/parameter"
	"github.com/lixenwraith/undertow/vmath"
)

// Noise layer tuning. Frequencies are in cycles per simulated second, so a
// drive layer at 0.05 swings the ghost between pushing and resting on a
// roughly 20-second mood cycle, slow enough for linger to saturate and the
// gate's calm dwell to complete inside a single rest.
const (
	driveFrequency  = 0.05
	depthFrequency  = 0.03
	aimFrequency    = 0.11
	fidgetFrequency = 0.04
	clickFrequency  = 0.17

	// Scrolling: below restFloor the hand is off the wheel entirely;
	// above it, speed scales from a reading drift up to a skimming burst.
	restFloor     = 0.40
	driftSpeedPx  = 180.0
	burstSpeedPx  = 2600.0
	minScrollStep = 0.5

	// Pointer: fidget gates whether the hand is on the mouse at all, the
	// deadband absorbs sub-perceptual tremor so stillness reads as stillness.
	fidgetFloor     = 0.45
	pointerDeadband = 0.004
	aimRowSpread    = 37.0

	clickThreshold = 0.78
)

// gesture is what the ghost did in one tick. The zero value means the hand
// rested: no scroll, no move, no press.
type gesture struct {
	scrolled bool
	offset   float64

	moved bool
	x, y  float64

	clicked bool
}

// ghost synthesizes a plausible visitor from layered noise. Five generators
// on sibling seeds drive independent behaviors: scroll urge, wanted page
// depth, pointer wander, hand-on-mouse gating, and press impulses. A session
// is a pure function of its seed and tick sequence, so replays are exact.
type ghost struct {
	drive  opensimplex.Noise
	depth  opensimplex.Noise
	aim    opensimplex.Noise
	fidget opensimplex.Noise
	click  opensimplex.Noise

	offset    float64
	lastX     float64
	lastY     float64
	prevClick float64
}

func newGhost(seed int64) *ghost {
	return &ghost{
		drive:  opensimplex.NewNormalized(seed),
		depth:  opensimplex.NewNormalized(seed + 1),
		aim:    opensimplex.NewNormalized(seed + 2),
		fidget: opensimplex.NewNormalized(seed + 3),
		click:  opensimplex.NewNormalized(seed + 4),
		lastX:  -1,
		lastY:  -1,
	}
}

// step advances the ghost to simulated time t and reports what it did.
func (g *ghost) step(t, dt float64) gesture {
	var out gesture

	// The ghost scrolls toward a noise-chosen depth rather than in a noise-
	// chosen direction; reversals and hesitation emerge when the wanted depth
	// drifts back past the current offset.
	urge := g.drive.Eval2(t*driveFrequency, 0)
	if urge > restFloor {
		target := g.depth.Eval2(t*depthFrequency, 0) * parameter.VirtualPageHeight
		speed := vmath.Lerp(driftSpeedPx, burstSpeedPx, (urge-restFloor)/(1-restFloor))
		step := vmath.Clamp(target-g.offset, -speed*dt, speed*dt)
		next := vmath.Clamp(g.offset+step, 0, parameter.VirtualPageHeight)
		if math.Abs(next-g.offset) >= minScrollStep {
			g.offset = next
			out.scrolled = true
			out.offset = next
		}
	}

	if g.fidget.Eval2(t*fidgetFrequency, 0) > fidgetFloor {
		x := g.aim.Eval2(t*aimFrequency, 0)
		y := g.aim.Eval2(t*aimFrequency, aimRowSpread)
		if vmath.Dist(x, y, g.lastX, g.lastY) > pointerDeadband {
			g.lastX, g.lastY = x, y
			out.moved = true
			out.x, out.y = x, y
		}
	}

	c := g.click.Eval2(t*clickFrequency, 0)
	if c > clickThreshold && g.prevClick <= clickThreshold {
		out.clicked = true
	}
	g.prevClick = c

	return out
}
