package engine

import (
	"github.com/lixenwraith/undertow/event"
)

// Engine converts raw scroll/pointer input into smoothed intent channels and
// drives the stateful layers on top of them: the zone transition gate, the
// emotional phase progression, the perception shift transient, and the
// interaction unlocks.
//
// One instance per session, owned by the composition root and passed by
// reference to collaborators. The engine is not internally synchronized:
// input calls and Update must run on the same goroutine, the way the
// reference consumers serialize terminal events and ticks through a single
// select loop. The hot path performs no I/O and returns no errors; bad
// numeric input is tamed by the clamping discipline, not rejected.
type Engine struct {
	clock  TimeProvider
	queue  *event.EventQueue
	router *event.Router[*Engine]

	sampler sampler
	synth   synthesizer
	gate    transitionGate
	phases  phaseMachine
	shift   perceptionShift
	unlocks unlockTracker

	uptime float64
	tick   int64
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithTimeProvider injects the clock used for scroll-event timing.
// Tests use MockTimeProvider to replay exact event spacings.
func WithTimeProvider(tp TimeProvider) Option {
	return func(e *Engine) {
		e.clock = tp
	}
}

// New creates an engine at rest: all channels at their neutral values,
// phase at curiosity, gate open, shift unarmed, nothing unlocked.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock: NewMonotonicTimeProvider(),
		queue: event.NewEventQueue(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.router = event.NewRouter[*Engine](e.queue)
	e.router.Register(pulseHandler{})
	e.sampler.init(e.clock.Now())
	e.synth.init()
	return e
}

// --- Inbound: producers ---

// OnScroll ingests the current scroll offset in pixels. Event timing comes
// from the injected clock; intervals are floored before differentiation.
func (e *Engine) OnScroll(position float64) {
	e.sampler.onScroll(position, e.clock.Now())
}

// OnPointerMove ingests a normalized pointer position. Out-of-range
// coordinates are clamped, not rejected.
func (e *Engine) OnPointerMove(x, y float64) {
	e.sampler.onPointerMove(x, y)
}

// OnPointerDown records a significant deliberate interaction. The phase
// machine consumes it as a flat accumulator boost on the next Update,
// regardless of which phase is active.
func (e *Engine) OnPointerDown() {
	e.emit(event.EventInteractionPulse, nil)
}

// Update advances the engine by dt seconds: pending events dispatch first,
// then raw signals age, channels resynthesize, and the gate, phase machine,
// shift transient, and unlock tracker step in that order. Oversized dt is
// not clamped here; every channel is re-clamped on every update, so a large
// step can at most saturate a signal, never escape its bounds.
func (e *Engine) Update(dt float64) {
	if dt < 0 {
		dt = 0
	}
	e.tick++
	e.router.DispatchAll(e)

	e.uptime += dt
	e.sampler.decay(dt)
	e.synth.update(&e.sampler.raw, dt)

	if e.gate.update(&e.synth.ch, dt) {
		e.emit(event.EventGateUnlocked, nil)
	}
	if e.phases.update(&e.synth.ch, dt) {
		e.emit(event.EventPhaseAdvanced, &event.PhaseAdvancedPayload{
			Index: int(e.phases.index),
			Name:  e.phases.index.String(),
		})
	}
	if e.shift.update(dt) {
		e.emit(event.EventShiftCompleted, nil)
	}
	for _, latch := range e.unlocks.update(&e.synth.ch, &e.sampler.raw, e.uptime, dt) {
		e.emit(event.EventUnlockLatched, &event.UnlockLatchedPayload{Latch: latch})
	}
}

// --- Outbound: consumers ---

// Channels returns the current intent channel values.
func (e *Engine) Channels() Channels {
	return e.synth.ch
}

// Raw returns the current raw sample, mainly for debug surfaces.
func (e *Engine) Raw() RawSample {
	return e.sampler.raw
}

// RequestTransition answers whether a pending zone change may commit now.
// Callers that want to change zones ask every tick; rushing locks the gate
// until the calm condition has held for the full unlock dwell.
func (e *Engine) RequestTransition() bool {
	allowed, lockedNow := e.gate.request(&e.synth.ch)
	if lockedNow {
		e.emit(event.EventGateLocked, nil)
	}
	return allowed
}

// TriggerPerceptionShift starts the one-shot anomaly transient. Idempotent:
// repeated calls after the first are silently ignored for the engine's
// lifetime.
func (e *Engine) TriggerPerceptionShift() {
	if e.shift.trigger() {
		e.emit(event.EventShiftStarted, nil)
	}
}

// PerceptionShiftActive reports whether the transient is currently running.
func (e *Engine) PerceptionShiftActive() bool {
	return e.shift.active
}

// PerceptionShiftProgress is 0 before the shift, rises to 1 while it runs,
// and stays at 1 once spent.
func (e *Engine) PerceptionShiftProgress() float64 {
	return e.shift.progress
}

// Phase returns the current emotional phase.
func (e *Engine) Phase() Phase {
	return e.phases.index
}

// PhaseProgress is the accumulator toward the next phase, pinned to 1 at
// the terminal phase.
func (e *Engine) PhaseProgress() float64 {
	return e.phases.progress()
}

// Unlocks returns the current unlock latches and resonance level.
func (e *Engine) Unlocks() Unlocks {
	return e.unlocks.latches
}

// ScrollHistory returns the retained scroll samples, oldest first.
func (e *Engine) ScrollHistory() []ScrollSample {
	return e.sampler.history.snapshot(nil)
}

// Uptime is total simulated seconds accumulated across Update calls.
func (e *Engine) Uptime() float64 {
	return e.uptime
}

// Tick is the Update counter, stamped onto emitted events.
func (e *Engine) Tick() int64 {
	return e.tick
}

// Subscribe registers an edge-triggered event handler. Handlers run on the
// update goroutine at the top of the tick after emission.
func (e *Engine) Subscribe(h event.Handler[*Engine]) {
	e.router.Register(h)
}

func (e *Engine) emit(t event.EventType, payload any) {
	e.queue.Push(event.EngineEvent{
		Type:      t,
		Payload:   payload,
		Tick:      e.tick,
		Timestamp: e.clock.Now(),
	})
}

// pulseHandler feeds significant-interaction events into the phase machine.
type pulseHandler struct{}

func (pulseHandler) HandleEvent(e *Engine, _ event.EngineEvent) {
	e.phases.pulse()
}

func (pulseHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventInteractionPulse}
}
