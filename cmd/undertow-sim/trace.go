package main

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/undertow/engine"
	"github.com/lixenwraith/undertow/event"
)

// tracer logs milestone events as they land and keeps counts for the
// end-of-run report. Dispatch is single-threaded on the update loop, so
// plain fields suffice.
type tracer struct {
	log *slog.Logger

	phaseAdvances int
	gateLocks     int
	gateReopens   int
	shiftStarted  bool
	shiftDone     bool
	latches       []string
}

func newTracer(log *slog.Logger) *tracer {
	return &tracer{log: log}
}

func (tr *tracer) HandleEvent(e *engine.Engine, ev event.EngineEvent) {
	switch ev.Type {
	case event.EventPhaseAdvanced:
		tr.phaseAdvances++
		if p, ok := ev.Payload.(*event.PhaseAdvancedPayload); ok {
			tr.log.Info("phase advanced",
				"phase", p.Name,
				"index", p.Index,
				"tick", ev.Tick,
				"uptime", uptimeAttr(e))
		}

	case event.EventGateLocked:
		tr.gateLocks++
		tr.log.Info("gate locked",
			"rush", fmt.Sprintf("%.2f", e.Channels().Rush),
			"tick", ev.Tick,
			"uptime", uptimeAttr(e))

	case event.EventGateUnlocked:
		tr.gateReopens++
		tr.log.Info("gate reopened",
			"linger", fmt.Sprintf("%.2f", e.Channels().Linger),
			"tick", ev.Tick,
			"uptime", uptimeAttr(e))

	case event.EventShiftStarted:
		tr.shiftStarted = true
		tr.log.Info("perception shift started", "tick", ev.Tick, "uptime", uptimeAttr(e))

	case event.EventShiftCompleted:
		tr.shiftDone = true
		tr.log.Info("perception shift completed", "tick", ev.Tick, "uptime", uptimeAttr(e))

	case event.EventUnlockLatched:
		if p, ok := ev.Payload.(*event.UnlockLatchedPayload); ok {
			tr.latches = append(tr.latches, p.Latch.String())
			tr.log.Info("unlock latched",
				"latch", p.Latch.String(),
				"tick", ev.Tick,
				"uptime", uptimeAttr(e))
		}
	}
}

func (tr *tracer) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPhaseAdvanced,
		event.EventShiftStarted,
		event.EventShiftCompleted,
		event.EventUnlockLatched,
		event.EventGateLocked,
		event.EventGateUnlocked,
	}
}

func uptimeAttr(e *engine.Engine) string {
	return fmt.Sprintf("%.2fs", e.Uptime())
}
