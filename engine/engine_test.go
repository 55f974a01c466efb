package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/undertow/event"
)

// flowRecorder captures the outward-facing event stream of a session
type flowRecorder struct {
	types   []event.EventType
	latches []event.Latch
}

func (r *flowRecorder) HandleEvent(_ *Engine, ev event.EngineEvent) {
	r.types = append(r.types, ev.Type)
	if ev.Type == event.EventUnlockLatched {
		r.latches = append(r.latches, ev.Payload.(*event.UnlockLatchedPayload).Latch)
	}
}

func (r *flowRecorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGateLocked,
		event.EventGateUnlocked,
		event.EventPhaseAdvanced,
		event.EventUnlockLatched,
	}
}

func (r *flowRecorder) count(t event.EventType) int {
	n := 0
	for _, rt := range r.types {
		if rt == t {
			n++
		}
	}
	return n
}

func (r *flowRecorder) indexOf(t event.EventType) int {
	for i, rt := range r.types {
		if rt == t {
			return i
		}
	}
	return -1
}

// TestEngineSessionFlow scripts a whole user arc against one engine: rushing
// locks the gate, settling reopens it, and the long stillness afterwards
// latches the data panels, with the event stream reporting each beat once,
// in order.
func TestEngineSessionFlow(t *testing.T) {
	e, tp := newTestEngine()
	rec := &flowRecorder{}
	e.Subscribe(rec)

	if !e.RequestTransition() {
		t.Fatal("Expected the gate to be open at rest")
	}

	// The user tears through the page for ~1s
	pos := 0.0
	for i := 0; i < 60; i++ {
		tp.Advance(16 * time.Millisecond)
		pos += 40
		e.OnScroll(pos)
		e.Update(0.016)
	}
	if r := e.Channels().Rush; r < 0.9 {
		t.Fatalf("Expected rush near saturation after the burst, got %v", r)
	}

	if e.RequestTransition() {
		t.Fatal("Expected the transition refused while rushing")
	}
	if e.RequestTransition() {
		t.Fatal("Expected repeat requests refused while rushing")
	}

	// A last gentle nudge, then hands off everything
	tp.Advance(16 * time.Millisecond)
	e.OnScroll(pos + 1)
	for i := 0; i < 220; i++ {
		tp.Advance(16 * time.Millisecond)
		e.Update(0.016)
	}

	if !e.RequestTransition() {
		t.Error("Expected the gate reopened after the calm stretch")
	}
	e.Update(0.016) // deliver anything still queued

	if n := rec.count(event.EventGateLocked); n != 1 {
		t.Errorf("Expected exactly one gate-locked event, got %d", n)
	}
	if n := rec.count(event.EventGateUnlocked); n != 1 {
		t.Errorf("Expected exactly one gate-unlocked event, got %d", n)
	}
	if n := rec.count(event.EventUnlockLatched); n != 1 {
		t.Errorf("Expected exactly one unlock event, got %d", n)
	}
	if n := rec.count(event.EventPhaseAdvanced); n != 0 {
		t.Errorf("Expected no phase advance from this short session, got %d", n)
	}

	locked := rec.indexOf(event.EventGateLocked)
	unlocked := rec.indexOf(event.EventGateUnlocked)
	latched := rec.indexOf(event.EventUnlockLatched)
	if !(locked < unlocked && unlocked < latched) {
		t.Errorf("Expected locked < unlocked < latched, got order %v", rec.types)
	}
	if len(rec.latches) != 1 || rec.latches[0] != event.LatchDataPanels {
		t.Errorf("Expected the data-panels latch, got %v", rec.latches)
	}

	u := e.Unlocks()
	if !u.DataPanelsExpanded {
		t.Error("Expected data panels expanded after the long stillness")
	}
	if u.GuideFishUnlocked {
		t.Error("Expected guide fish still locked under 20s uptime")
	}
}

// TestEngineAccessorCopies verifies the read surface hands out values, not
// aliases into engine state
func TestEngineAccessorCopies(t *testing.T) {
	e, _ := newTestEngine()
	e.Update(0.016)

	ch := e.Channels()
	ch.TimeScale = 99
	if got := e.Channels().TimeScale; got == 99 {
		t.Error("Expected Channels to return a copy")
	}

	raw := e.Raw()
	raw.ScrollPosition = 12345
	if got := e.Raw().ScrollPosition; got == 12345 {
		t.Error("Expected Raw to return a copy")
	}

	u := e.Unlocks()
	u.GuideFishUnlocked = true
	if e.Unlocks().GuideFishUnlocked {
		t.Error("Expected Unlocks to return a copy")
	}
}

// TestUpdateNegativeDt verifies a negative step is treated as zero time
func TestUpdateNegativeDt(t *testing.T) {
	e, _ := newTestEngine()
	e.Update(-5)

	if up := e.Uptime(); up != 0 {
		t.Errorf("Expected zero uptime after negative dt, got %v", up)
	}
	if ts := e.Channels().TimeScale; ts != 1 {
		t.Errorf("Expected time scale untouched at 1, got %v", ts)
	}
	if e.Tick() != 1 {
		t.Errorf("Expected the tick counter to still advance, got %d", e.Tick())
	}
}

// TestScrollCadence drives periodic scroll bursts and expects the diagnostic
// to recover the burst frequency
func TestScrollCadence(t *testing.T) {
	e, tp := newTestEngine()

	// Six bursts, one every 500ms: three hard flicks then a settling nudge
	pos := 0.0
	for b := 0; b < 6; b++ {
		for i := 0; i < 3; i++ {
			tp.Advance(16 * time.Millisecond)
			pos += 40
			e.OnScroll(pos)
		}
		tp.Advance(16 * time.Millisecond)
		pos += 1
		e.OnScroll(pos)
		if b < 5 {
			tp.Advance(436 * time.Millisecond)
		}
	}

	hz, power := e.ScrollCadence()
	if hz < 1.4 || hz > 2.6 {
		t.Errorf("Expected cadence near 2Hz, got %vHz", hz)
	}
	if power <= 0.05 {
		t.Errorf("Expected a dominant peak, got power %v", power)
	}
}

// TestScrollCadenceSparse verifies the diagnostic stays silent without
// enough history to support an estimate
func TestScrollCadenceSparse(t *testing.T) {
	e, tp := newTestEngine()
	for i := 0; i < 3; i++ {
		tp.Advance(100 * time.Millisecond)
		e.OnScroll(float64(i) * 50)
	}
	if hz, power := e.ScrollCadence(); hz != 0 || power != 0 {
		t.Errorf("Expected zeros from a sparse window, got %vHz %v", hz, power)
	}

	// Coalesced timestamps give a degenerate span
	e2, _ := newTestEngine()
	for i := 0; i < 10; i++ {
		e2.OnScroll(float64(i) * 50)
	}
	if hz, power := e2.ScrollCadence(); hz != 0 || power != 0 {
		t.Errorf("Expected zeros from a zero-width window, got %vHz %v", hz, power)
	}
}
