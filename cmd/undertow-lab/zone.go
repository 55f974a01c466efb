package main

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/undertow/engine"
	"github.com/lixenwraith/undertow/parameter"
)

// zoneBlendSeconds is the nominal palette crossfade time; the engine's
// TimeScale stretches or compresses it like everything else animated
const zoneBlendSeconds = 1.2

// zone is one atmospheric tier of the virtual page, deep-to-glow two-tone
type zone struct {
	name string
	deep colorful.Color
	glow colorful.Color
}

// zoneTiers are ordered by scroll depth, a quarter of the page each
var zoneTiers = []zone{
	{"surface", colorful.Color{R: 0.05, G: 0.18, B: 0.28}, colorful.Color{R: 0.45, G: 0.82, B: 0.90}},
	{"drift", colorful.Color{R: 0.03, G: 0.11, B: 0.24}, colorful.Color{R: 0.30, G: 0.55, B: 0.85}},
	{"midnight", colorful.Color{R: 0.04, G: 0.05, B: 0.16}, colorful.Color{R: 0.48, G: 0.35, B: 0.80}},
	{"abyss", colorful.Color{R: 0.02, G: 0.02, B: 0.07}, colorful.Color{R: 0.75, G: 0.30, B: 0.55}},
}

// zonePanel owns which atmospheric tier is committed. Scroll depth selects
// the wanted tier; committing it has to pass the engine's transition gate,
// asked again every tick until it opens. The crossfade blends in HCL space.
type zonePanel struct {
	current  int
	target   int
	blending bool
	blend    float64
}

func newZonePanel() *zonePanel {
	return &zonePanel{}
}

// wantedZone maps a scroll offset to its tier index
func wantedZone(offset float64) int {
	band := parameter.VirtualPageHeight / float64(len(zoneTiers))
	idx := int(offset / band)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(zoneTiers) {
		idx = len(zoneTiers) - 1
	}
	return idx
}

func (z *zonePanel) step(eng *engine.Engine, offset, dt float64) {
	if z.blending {
		z.blend += dt * eng.Channels().TimeScale / zoneBlendSeconds
		if z.blend >= 1 {
			z.current = z.target
			z.blending = false
			z.blend = 0
		}
		return
	}

	wanted := wantedZone(offset)
	if wanted == z.current {
		return
	}
	// Ask every tick; while the user rushes the gate refuses and the
	// palette holds its ground
	if eng.RequestTransition() {
		z.target = wanted
		z.blending = true
		z.blend = 0
	}
}

// colors returns the palette as currently displayed, mid-crossfade included
func (z *zonePanel) colors() (deep, glow colorful.Color) {
	cur := zoneTiers[z.current]
	if !z.blending {
		return cur.deep, cur.glow
	}
	tgt := zoneTiers[z.target]
	return cur.deep.BlendHcl(tgt.deep, z.blend).Clamped(),
		cur.glow.BlendHcl(tgt.glow, z.blend).Clamped()
}

// name reports the committed tier, or the src>dst pair mid-crossfade
func (z *zonePanel) label() string {
	if z.blending {
		return zoneTiers[z.current].name + ">" + zoneTiers[z.target].name
	}
	return zoneTiers[z.current].name
}
