package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/undertow/parameter"
)

func checkBounds(t *testing.T, ch Channels, context string) {
	t.Helper()
	within := func(name string, v, lo, hi float64) {
		if v < lo || v > hi || math.IsNaN(v) {
			t.Errorf("%s: %s out of [%v,%v]: %v", context, name, lo, hi, v)
		}
	}
	within("rush", ch.Rush, 0, 1)
	within("linger", ch.Linger, 0, 1)
	within("hesitation", ch.Hesitation, 0, 1)
	within("mouseIntensity", ch.MouseIntensity, 0, 1)
	within("explorationRhythm", ch.ExplorationRhythm, -1, 1)
	within("timeScale", ch.TimeScale, parameter.TimeScaleMin, parameter.TimeScaleMax)
	if ch.CursorDwellSeconds < 0 {
		t.Errorf("%s: negative dwell seconds %v", context, ch.CursorDwellSeconds)
	}
}

// TestChannelBoundedness feeds adversarial input sequences and asserts every
// channel stays in range after every update
func TestChannelBoundedness(t *testing.T) {
	tests := []struct {
		name  string
		drive func(e *Engine, tp *MockTimeProvider, step int)
		dt    float64
	}{
		{
			name: "Huge dt",
			drive: func(e *Engine, tp *MockTimeProvider, step int) {
				tp.Advance(time.Millisecond)
				e.OnScroll(float64(step) * 1e7)
			},
			dt: 1000,
		},
		{
			name: "Zero dt",
			drive: func(e *Engine, tp *MockTimeProvider, step int) {
				e.OnScroll(float64(step) * 300)
				e.OnPointerMove(float64(step%2), 0.5)
			},
			dt: 0,
		},
		{
			name: "Sign-flip storm",
			drive: func(e *Engine, tp *MockTimeProvider, step int) {
				tp.Advance(time.Millisecond)
				if step%2 == 0 {
					e.OnScroll(1e6)
				} else {
					e.OnScroll(-1e6)
				}
			},
			dt: 0.016,
		},
		{
			name: "Pointer teleporting",
			drive: func(e *Engine, tp *MockTimeProvider, step int) {
				e.OnPointerMove(float64(step%2)*50, -float64(step%3))
				e.OnPointerDown()
			},
			dt: 0.016,
		},
		{
			name: "Negative dt",
			drive: func(e *Engine, tp *MockTimeProvider, step int) {
				tp.Advance(time.Millisecond)
				e.OnScroll(float64(step * step))
			},
			dt: -5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tp := newTestEngine()
			for step := 0; step < 200; step++ {
				tt.drive(e, tp, step)
				e.Update(tt.dt)
				checkBounds(t, e.Channels(), tt.name)
			}
		})
	}
}

// TestRushConvergence verifies sustained fast scrolling saturates rush and
// keeps the gate refusing throughout
func TestRushConvergence(t *testing.T) {
	e, tp := newTestEngine()

	const dt = 0.016
	warmed := false
	for i := 0; i < 125; i++ { // 2 seconds
		tp.Advance(16 * time.Millisecond)
		e.OnScroll(float64(i+1) * 40) // 2500 px/s
		e.Update(dt)

		if e.Channels().Rush > parameter.GateLockRushThreshold {
			warmed = true
		}
		if warmed {
			if e.RequestTransition() {
				t.Fatalf("Expected transition refused at step %d with rush %v", i, e.Channels().Rush)
			}
		}
	}

	if !warmed {
		t.Fatal("Expected rush to cross the lock threshold")
	}
	if rush := e.Channels().Rush; rush < 0.95 {
		t.Errorf("Expected rush near saturation after 2s, got %v", rush)
	}
}

// TestLingerSaturation verifies linger climbs with scroll stillness and
// resets on scroll
func TestLingerSaturation(t *testing.T) {
	e, tp := newTestEngine()

	for i := 0; i < 200; i++ { // 3.2 seconds still
		e.Update(0.016)
	}
	if linger := e.Channels().Linger; linger != 1 {
		t.Errorf("Expected linger saturated at 1, got %v", linger)
	}

	tp.Advance(3200 * time.Millisecond)
	e.OnScroll(100)
	e.Update(0.016)
	if linger := e.Channels().Linger; linger > 0.01 {
		t.Errorf("Expected linger near 0 right after scroll, got %v", linger)
	}
}

// TestDwellLatch verifies the 1.2s threshold semantics and position latching
func TestDwellLatch(t *testing.T) {
	e, _ := newTestEngine()

	// Idle for 1.19s: never dwelling
	e.OnPointerMove(0.3, 0.4)
	for i := 0; i < 119; i++ {
		e.Update(0.01)
		if e.Channels().CursorDwelling {
			t.Fatalf("Expected no dwell at %v idle", e.Raw().PointerIdleSeconds)
		}
	}

	// A move resets the clock; 1.21s of stillness latches at the mark
	e.OnPointerMove(0.31, 0.4)
	for i := 0; i < 121; i++ {
		e.Update(0.01)
	}
	ch := e.Channels()
	if !ch.CursorDwelling {
		t.Fatal("Expected dwelling after 1.21s idle")
	}
	if ch.CursorDwellX != 0.31 || ch.CursorDwellY != 0.4 {
		t.Errorf("Expected dwell position latched at last move (0.31,0.4), got (%v,%v)", ch.CursorDwellX, ch.CursorDwellY)
	}
	if ch.CursorDwellSeconds <= 0 || ch.CursorDwellSeconds > 0.02 {
		t.Errorf("Expected dwell seconds just past zero, got %v", ch.CursorDwellSeconds)
	}

	// Dwelling cancels the instant the pointer moves
	e.OnPointerMove(0.5, 0.5)
	e.Update(0.01)
	if e.Channels().CursorDwelling {
		t.Error("Expected dwell cancelled on move")
	}
}

// TestTimeScaleDrift verifies the multiplier drifts toward its weighted
// target and respects its bounds
func TestTimeScaleDrift(t *testing.T) {
	e, tp := newTestEngine()

	if ts := e.Channels().TimeScale; ts != 1 {
		t.Fatalf("Expected neutral time scale at rest, got %v", ts)
	}

	// Sustained rush pushes toward 1.8
	for i := 0; i < 500; i++ { // 8 seconds
		tp.Advance(16 * time.Millisecond)
		e.OnScroll(float64(i+1) * 40)
		e.Update(0.016)
	}
	if ts := e.Channels().TimeScale; ts < 1.5 || ts > parameter.TimeScaleMax {
		t.Errorf("Expected time scale approaching 1.8 under rush, got %v", ts)
	}

	// Long stillness pulls toward 0.5
	for i := 0; i < 2000; i++ { // 32 seconds
		e.Update(0.016)
	}
	if ts := e.Channels().TimeScale; ts > 0.7 || ts < parameter.TimeScaleMin {
		t.Errorf("Expected time scale approaching 0.5 under linger, got %v", ts)
	}
}

// TestExplorationRhythmSign verifies the mood runs negative when rushing and
// positive when lingering
func TestExplorationRhythmSign(t *testing.T) {
	e, tp := newTestEngine()

	for i := 0; i < 250; i++ { // 4 seconds of rushing
		tp.Advance(16 * time.Millisecond)
		e.OnScroll(float64(i+1) * 40)
		e.Update(0.016)
	}
	if r := e.Channels().ExplorationRhythm; r >= 0 {
		t.Errorf("Expected negative rhythm while rushing, got %v", r)
	}

	for i := 0; i < 2000; i++ { // 32 seconds of stillness
		e.Update(0.016)
	}
	if r := e.Channels().ExplorationRhythm; r <= 0.5 {
		t.Errorf("Expected strongly positive rhythm after long stillness, got %v", r)
	}
}
