package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/undertow/engine"
	"github.com/lixenwraith/undertow/event"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDuration = 100 * time.Millisecond

	chimeDuration = 600 * time.Millisecond
	tickDuration  = 90 * time.Millisecond
	sweepDuration = 4 * time.Second
)

// chimeLadder maps the arrived-at phase index to a chime pitch, climbing an
// A-minor-seventh arpeggio as the narrative deepens
var chimeLadder = [...]float64{220, 440, 523.25, 659.25, 783.99}

// Cues turns engine milestones into short synthesized sounds: a chime ladder
// for phase advances, a bright tick for unlock latches, a long swell for the
// perception shift. Everything is optional; a missing audio device leaves
// the manager inert rather than failing the program.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewCues creates a cue manager
func NewCues() *Cues {
	return &Cues{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer. Safe to call
// twice; the second call is a no-op.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences everything. Cues played afterwards are dropped.
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// ToggleMute flips the mute state and reports the new one
func (c *Cues) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// SetMuted sets the mute state directly
func (c *Cues) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = muted
}

// PhaseChime rings the ladder note for the phase index just arrived at
func (c *Cues) PhaseChime(index int) {
	if index < 0 || index >= len(chimeLadder) {
		index = len(chimeLadder) - 1
	}
	c.play(beep.Take(sampleRate.N(chimeDuration), NewChimeGenerator(sampleRate, chimeLadder[index])))
}

// UnlockTick plays the short bright tick for a latched unlock
func (c *Cues) UnlockTick() {
	c.play(beep.Take(sampleRate.N(tickDuration), NewTickGenerator(sampleRate)))
}

// ShiftSweep plays the long swell that shadows the perception shift
func (c *Cues) ShiftSweep() {
	c.play(beep.Take(sampleRate.N(sweepDuration), NewSweepGenerator(sampleRate)))
}

func (c *Cues) play(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvent maps engine events onto cues
func (c *Cues) HandleEvent(_ *engine.Engine, ev event.EngineEvent) {
	switch ev.Type {
	case event.EventPhaseAdvanced:
		if p, ok := ev.Payload.(*event.PhaseAdvancedPayload); ok {
			c.PhaseChime(p.Index)
		}
	case event.EventUnlockLatched:
		c.UnlockTick()
	case event.EventShiftStarted:
		c.ShiftSweep()
	}
}

// EventTypes declares the subscriptions for router registration
func (c *Cues) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPhaseAdvanced,
		event.EventUnlockLatched,
		event.EventShiftStarted,
	}
}
