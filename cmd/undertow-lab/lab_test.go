package main

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/undertow/engine"
	"github.com/lixenwraith/undertow/parameter"
)

func TestWantedZone(t *testing.T) {
	tests := []struct {
		offset float64
		want   int
	}{
		{0, 0},
		{1499, 0},
		{1500, 1},
		{2999, 1},
		{4500, 3},
		{parameter.VirtualPageHeight, 3},
		{parameter.VirtualPageHeight + 500, 3},
		{-10, 0},
	}
	for _, tt := range tests {
		if got := wantedZone(tt.offset); got != tt.want {
			t.Errorf("wantedZone(%v): expected tier %d, got %d", tt.offset, tt.want, got)
		}
	}
}

// TestZoneGateRefusal drives a rushing session into a deeper tier and
// expects the palette to hold until the engine's gate opens
func TestZoneGateRefusal(t *testing.T) {
	tp := engine.NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	eng := engine.New(engine.WithTimeProvider(tp))
	z := newZonePanel()

	// Tear into the second tier at 2500 px/s
	pos := 0.0
	for i := 0; i < 60; i++ {
		tp.Advance(16 * time.Millisecond)
		pos += 40
		eng.OnScroll(pos)
		eng.Update(0.016)
		z.step(eng, pos, 0.016)
	}
	if z.blending || z.current != 0 {
		t.Fatalf("Expected the palette held at tier 0 while rushing, got tier=%d blending=%v", z.current, z.blending)
	}

	// A last gentle nudge, then stillness long enough to open the gate
	tp.Advance(16 * time.Millisecond)
	eng.OnScroll(pos + 1)
	for i := 0; i < 150; i++ {
		tp.Advance(16 * time.Millisecond)
		eng.Update(0.016)
		z.step(eng, pos+1, 0.016)
	}
	if !z.blending && z.current == 0 {
		t.Fatal("Expected the crossfade to begin once the gate opened")
	}

	// Let the crossfade run out
	for i := 0; i < 600 && (z.blending || z.current == 0); i++ {
		eng.Update(0.016)
		z.step(eng, pos+1, 0.016)
	}
	if want := wantedZone(pos + 1); z.current != want {
		t.Errorf("Expected tier %d committed, got %d", want, z.current)
	}
}

// TestMeterBankSettles verifies a needle converges onto a steady channel
func TestMeterBankSettles(t *testing.T) {
	bank := newMeterBank([]meterRow{
		{"steady", 0, 1, func(*engine.Engine) float64 { return 0.8 }},
	})

	for i := 0; i < 180; i++ {
		bank.step(nil)
	}
	if math.Abs(bank.pos[0]-0.8) > 0.05 {
		t.Errorf("Expected the needle settled near 0.8, got %v", bank.pos[0])
	}
}
