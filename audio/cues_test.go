package audio

import (
	"testing"

	"github.com/lixenwraith/undertow/event"
)

// TestCuesGracefulDegradation verifies cue operations don't panic when the
// audio device was never opened
func TestCuesGracefulDegradation(t *testing.T) {
	c := NewCues()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cue operations panicked without initialization: %v", r)
		}
	}()

	c.PhaseChime(1)
	c.UnlockTick()
	c.ShiftSweep()
	c.ToggleMute()
	c.Cleanup()
}

// TestCuesHandlerWithoutDevice verifies event delivery is safe with no
// device and tolerates malformed payloads
func TestCuesHandlerWithoutDevice(t *testing.T) {
	c := NewCues()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Event handling panicked: %v", r)
		}
	}()

	c.HandleEvent(nil, event.EngineEvent{
		Type:    event.EventPhaseAdvanced,
		Payload: &event.PhaseAdvancedPayload{Index: 2, Name: "confrontation"},
	})
	c.HandleEvent(nil, event.EngineEvent{Type: event.EventPhaseAdvanced, Payload: nil})
	c.HandleEvent(nil, event.EngineEvent{Type: event.EventUnlockLatched})
	c.HandleEvent(nil, event.EngineEvent{Type: event.EventShiftStarted})
}

// TestCuesSubscriptions verifies the handler subscribes to exactly the
// milestone events
func TestCuesSubscriptions(t *testing.T) {
	c := NewCues()

	types := c.EventTypes()
	want := map[event.EventType]bool{
		event.EventPhaseAdvanced: true,
		event.EventUnlockLatched: true,
		event.EventShiftStarted:  true,
	}
	if len(types) != len(want) {
		t.Fatalf("Expected %d subscriptions, got %d", len(want), len(types))
	}
	for _, et := range types {
		if !want[et] {
			t.Errorf("Unexpected subscription to %v", et)
		}
	}
}

// TestCuesMuteToggle verifies the toggle reports the new state
func TestCuesMuteToggle(t *testing.T) {
	c := NewCues()

	if !c.ToggleMute() {
		t.Error("Expected the first toggle to mute")
	}
	if c.ToggleMute() {
		t.Error("Expected the second toggle to unmute")
	}

	c.SetMuted(true)
	if !c.muted {
		t.Error("Expected SetMuted(true) to mute")
	}
}

// TestCueConstants verifies the tuning constants are sane
func TestCueConstants(t *testing.T) {
	if sampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", sampleRate)
	}
	if speakerBufferDuration <= 0 {
		t.Error("Speaker buffer duration must be positive")
	}
	if chimeDuration <= 0 || tickDuration <= 0 || sweepDuration <= 0 {
		t.Error("Cue durations must be positive")
	}

	for i := 1; i < len(chimeLadder); i++ {
		if chimeLadder[i] <= chimeLadder[i-1] {
			t.Errorf("Expected the chime ladder to ascend, got %v", chimeLadder)
		}
	}
	for _, f := range chimeLadder {
		if f < 20 || f > 20000 {
			t.Errorf("Chime frequency %v outside the audible range", f)
		}
	}
}

// TestCueAmplitudes verifies cue loudness stays within headroom
func TestCueAmplitudes(t *testing.T) {
	amplitudes := []struct {
		name  string
		value float64
	}{
		{"chimeAmplitude", chimeAmplitude},
		{"tickAmplitude", tickAmplitude},
		{"sweepAmplitude", sweepAmplitude},
	}

	for _, amp := range amplitudes {
		if amp.value <= 0 || amp.value > 0.5 {
			t.Errorf("%s should be between 0 and 0.5, got %f", amp.name, amp.value)
		}
	}
}
