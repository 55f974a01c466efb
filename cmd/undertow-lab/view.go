package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/undertow/parameter"
	"github.com/lixenwraith/undertow/vmath"
)

const (
	meterBarWidth = 24
	labelWidth    = 10
)

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// text writes a string, advancing by display width, clipped at the screen edge
func (l *Lab) text(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		if x >= l.width-1 {
			break
		}
		l.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// gauge draws a horizontal bar filled to norm in [0,1]
func (l *Lab) gauge(x, y, width int, norm float64, style tcell.Style) {
	fill := int(vmath.Clamp01(norm) * float64(width))
	for i := 0; i < width; i++ {
		r := '░'
		if i < fill {
			r = '█'
		}
		if x+i >= l.width-1 {
			break
		}
		l.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (l *Lab) draw() {
	deep, glow := l.zones.colors()
	base := tcell.StyleDefault.Background(tcellColor(deep)).Foreground(tcellColor(glow))
	dim := base.Dim(true)

	l.screen.Fill(' ', base)

	// Title row and key help
	l.text(1, 0, base.Bold(true), "undertow lab")
	l.text(15, 0, dim, "wheel/j/k/pgup/pgdn scroll · p shift · d debug · m mute · q quit")

	// Zone and gate line
	gate := "gate open"
	gateStyle := dim
	if l.gateLocked {
		gate = "gate locked - settle to pass"
		gateStyle = base.Reverse(true)
	}
	x := l.text(1, 1, base, "zone: "+l.zones.label())
	l.text(x+3, 1, gateStyle, gate)
	if l.muted {
		l.text(l.width-8, 1, dim, "muted")
	}

	// Channel meters
	top := 3
	for i, row := range l.meters.rows {
		norm := (l.meters.pos[i] - row.lo) / (row.hi - row.lo)
		y := top + i
		l.text(1, y, base, runewidth.FillLeft(row.label, labelWidth))
		l.gauge(labelWidth+2, y, meterBarWidth, norm, base)
		l.text(labelWidth+3+meterBarWidth, y, base, fmt.Sprintf("%5.2f", l.meters.pos[i]))
	}

	// Phase banner
	py := top + len(l.meters.rows) + 1
	phase := l.eng.Phase()
	progress := l.eng.PhaseProgress()
	l.text(1, py, base.Bold(true), runewidth.FillLeft(phase.String(), labelWidth))
	l.gauge(labelWidth+2, py, meterBarWidth, progress, base)
	l.text(labelWidth+3+meterBarWidth, py, base, fmt.Sprintf("%3.0f%%", progress*100))

	// Perception shift
	sy := py + 1
	l.text(1, sy, base, runewidth.FillLeft("shift", labelWidth))
	shiftProgress := l.eng.PerceptionShiftProgress()
	switch {
	case l.eng.PerceptionShiftActive():
		l.gauge(labelWidth+2, sy, meterBarWidth, vmath.Arc(shiftProgress), base.Blink(true))
	case shiftProgress >= 1:
		l.text(labelWidth+2, sy, dim, "spent")
	default:
		l.text(labelWidth+2, sy, dim, "dormant (p)")
	}

	// Unlock latches and dwell state
	uy := sy + 2
	u := l.eng.Unlocks()
	l.text(1, uy, base, fmt.Sprintf("%s guide fish   %s data panels",
		checkbox(u.GuideFishUnlocked), checkbox(u.DataPanelsExpanded)))
	ch := l.eng.Channels()
	if ch.CursorDwelling {
		l.text(1, uy+1, base, fmt.Sprintf("dwelling %4.1fs at (%.2f, %.2f)",
			ch.CursorDwellSeconds, ch.CursorDwellX, ch.CursorDwellY))
	}

	// Milestone notice
	if l.notice != "" && l.noticeAge < noticeFadeSeconds {
		l.text(1, uy+3, base.Bold(true), l.notice)
	}

	if l.debug {
		l.drawDebug(dim)
	}

	l.drawScrollbar(base)
	l.screen.Show()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// drawDebug prints the raw sample and the cadence diagnostic on the bottom
// rows
func (l *Lab) drawDebug(dim tcell.Style) {
	raw := l.eng.Raw()
	hz, power := l.eng.ScrollCadence()

	y := l.height - 4
	l.text(1, y, dim, fmt.Sprintf("scroll  pos=%7.1f vel=%9.1f acc=%11.1f flips=%5.2f",
		raw.ScrollPosition, raw.ScrollVelocity, raw.ScrollAcceleration, raw.DirectionChanges))
	l.text(1, y+1, dim, fmt.Sprintf("pointer (%.2f, %.2f) vel=%6.3f idle=%6.2fs quiet=%6.2fs",
		raw.PointerX, raw.PointerY, raw.PointerVelocity, raw.PointerIdleSeconds, raw.SecondsSinceScroll))
	l.text(1, y+2, dim, fmt.Sprintf("cadence %5.2fHz power=%4.2f samples=%d uptime=%7.1fs tick=%d",
		hz, power, len(l.eng.ScrollHistory()), l.eng.Uptime(), l.eng.Tick()))
}

// drawScrollbar marks the virtual page position along the right edge
func (l *Lab) drawScrollbar(base tcell.Style) {
	track := l.height - 2
	if track < 1 {
		return
	}
	thumb := 1 + int(l.adapter.Offset()/parameter.VirtualPageHeight*float64(track-1))
	for y := 1; y <= track; y++ {
		r := '│'
		if y == thumb {
			r = '█'
		}
		l.screen.SetContent(l.width-1, y, r, nil, base)
	}
}
