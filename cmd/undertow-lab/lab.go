package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/harmonica"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undertow/audio"
	"github.com/lixenwraith/undertow/engine"
	"github.com/lixenwraith/undertow/event"
	"github.com/lixenwraith/undertow/input"
)

const (
	meterSpringFPS       = 60
	meterSpringFrequency = 6.0
	meterSpringDamping   = 0.9

	noticeFadeSeconds = 3.0
)

// meterRow describes one channel needle: its label, displayed range, and
// where the value comes from
type meterRow struct {
	label  string
	lo, hi float64
	read   func(*engine.Engine) float64
}

// meterBank spring-smooths every needle with a shared spring, one
// position/velocity pair per row
type meterBank struct {
	spring harmonica.Spring
	rows   []meterRow
	pos    []float64
	vel    []float64
}

func newMeterBank(rows []meterRow) *meterBank {
	return &meterBank{
		spring: harmonica.NewSpring(harmonica.FPS(meterSpringFPS), meterSpringFrequency, meterSpringDamping),
		rows:   rows,
		pos:    make([]float64, len(rows)),
		vel:    make([]float64, len(rows)),
	}
}

func (b *meterBank) step(eng *engine.Engine) {
	for i, row := range b.rows {
		p, v := b.spring.Update(b.pos[i], b.vel[i], row.read(eng))
		b.pos[i] = p
		b.vel[i] = v
	}
}

// Lab is the interactive visualizer: it feeds terminal input to the engine
// through the adapter and draws the engine's outward surface every frame.
type Lab struct {
	screen  tcell.Screen
	eng     *engine.Engine
	adapter *input.Adapter
	cues    *audio.Cues
	log     *slog.Logger

	meters *meterBank
	zones  *zonePanel

	width, height int
	debug         bool
	muted         bool
	gateLocked    bool

	// notice is the last milestone line, fading over a few seconds
	notice    string
	noticeAge float64
}

func newLab(screen tcell.Screen, eng *engine.Engine, adapter *input.Adapter, cues *audio.Cues, log *slog.Logger) *Lab {
	width, height := screen.Size()
	rows := []meterRow{
		{"rush", 0, 1, func(e *engine.Engine) float64 { return e.Channels().Rush }},
		{"linger", 0, 1, func(e *engine.Engine) float64 { return e.Channels().Linger }},
		{"hesitation", 0, 1, func(e *engine.Engine) float64 { return e.Channels().Hesitation }},
		{"mouse", 0, 1, func(e *engine.Engine) float64 { return e.Channels().MouseIntensity }},
		{"rhythm", -1, 1, func(e *engine.Engine) float64 { return e.Channels().ExplorationRhythm }},
		{"timescale", 0.3, 2.0, func(e *engine.Engine) float64 { return e.Channels().TimeScale }},
		{"resonance", 0, 1, func(e *engine.Engine) float64 { return e.Unlocks().BeamResonance }},
	}
	return &Lab{
		screen:  screen,
		eng:     eng,
		adapter: adapter,
		cues:    cues,
		log:     log,
		meters:  newMeterBank(rows),
		zones:   newZonePanel(),
		width:   width,
		height:  height,
	}
}

// apply feeds one terminal event through the adapter into the engine.
// Returns false when the lab should exit.
func (l *Lab) apply(ev tcell.Event) bool {
	act := l.adapter.Process(ev)
	if act == nil {
		return true
	}

	switch act.Type {
	case input.ActionQuit:
		return false
	case input.ActionResize:
		l.width, l.height = l.screen.Size()
		l.screen.Sync()
	case input.ActionScroll:
		l.eng.OnScroll(act.Offset)
	case input.ActionPointerMove:
		l.eng.OnPointerMove(act.X, act.Y)
	case input.ActionPointerDown:
		l.eng.OnPointerMove(act.X, act.Y)
		l.eng.OnPointerDown()
	case input.ActionShift:
		l.eng.TriggerPerceptionShift()
	case input.ActionToggleDebug:
		l.debug = !l.debug
	case input.ActionToggleMute:
		l.muted = l.cues.ToggleMute()
	}
	return true
}

// step advances the presentation layer: needle springs, the zone panel's
// gated blend, and the notice fade
func (l *Lab) step(dt float64) {
	l.meters.step(l.eng)
	l.zones.step(l.eng, l.adapter.Offset(), dt)
	l.noticeAge += dt
}

// HandleEvent surfaces engine milestones on the notice line
func (l *Lab) HandleEvent(_ *engine.Engine, ev event.EngineEvent) {
	switch ev.Type {
	case event.EventPhaseAdvanced:
		if p, ok := ev.Payload.(*event.PhaseAdvancedPayload); ok {
			l.setNotice(fmt.Sprintf("phase reached: %s", p.Name))
			l.log.Info("phase advanced", "index", p.Index, "name", p.Name)
		}
	case event.EventGateLocked:
		l.gateLocked = true
		l.setNotice("zone transition refused: too much rush")
	case event.EventGateUnlocked:
		l.gateLocked = false
		l.setNotice("zone gate open")
	case event.EventShiftStarted:
		l.setNotice("perception shift")
	case event.EventShiftCompleted:
		l.setNotice("perception shift spent")
	case event.EventUnlockLatched:
		if p, ok := ev.Payload.(*event.UnlockLatchedPayload); ok {
			l.setNotice(fmt.Sprintf("unlocked: %s", p.Latch))
			l.log.Info("unlock latched", "latch", p.Latch.String())
		}
	}
}

// EventTypes subscribes the HUD to every outward milestone
func (l *Lab) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPhaseAdvanced,
		event.EventGateLocked,
		event.EventGateUnlocked,
		event.EventShiftStarted,
		event.EventShiftCompleted,
		event.EventUnlockLatched,
	}
}

func (l *Lab) setNotice(s string) {
	l.notice = s
	l.noticeAge = 0
}
