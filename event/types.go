package event

import (
	"time"
)

// EventType represents the type of engine event
type EventType int

const (
	// EventInteractionPulse signals a significant deliberate interaction
	// Trigger: pointer press (input adapter)
	// Consumer: phase machine (flat accumulator boost) | Payload: nil
	EventInteractionPulse EventType = iota

	// EventPhaseAdvanced signals an emotional phase transition
	// Trigger: phase accumulator saturation, fires exactly once per advance
	// Consumer: edge-triggered collaborators (audio cues, traces) | Payload: *PhaseAdvancedPayload
	// Latency: next tick (dispatch runs at the top of Update)
	EventPhaseAdvanced

	// EventShiftStarted signals perception shift activation
	// Trigger: first TriggerPerceptionShift call
	// Consumer: audio cues, traces | Payload: nil
	EventShiftStarted

	// EventShiftCompleted signals perception shift saturation
	// Trigger: shift progress reaching 1 (~4s after start)
	// Consumer: audio cues, traces | Payload: nil
	EventShiftCompleted

	// EventUnlockLatched signals a one-shot unlock flipping true
	// Trigger: unlock tracker threshold crossing, once per latch
	// Consumer: audio cues, traces | Payload: *UnlockLatchedPayload
	EventUnlockLatched

	// EventGateLocked signals the zone gate refusing transitions
	// Trigger: transition requested while rush is high
	// Consumer: traces, debug overlays | Payload: nil
	EventGateLocked

	// EventGateUnlocked signals the zone gate reopening
	// Trigger: calm condition held for the full unlock dwell
	// Consumer: traces, debug overlays | Payload: nil
	EventGateUnlocked
)

// EngineEvent represents a single engine event with metadata
type EngineEvent struct {
	Type      EventType
	Payload   any
	Tick      int64 // Update counter at emission
	Timestamp time.Time
}
