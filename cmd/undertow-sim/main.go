// undertow-sim drives the intent engine with a noise-synthesized ghost
// visitor instead of a terminal: scroll bursts, reading pauses, pointer
// wander, and the occasional press, all at a fixed simulated tick on a
// mocked clock. The same seed replays the same session event for event,
// which makes it the tuning harness for the channel and gate parameters.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/undertow/engine"
	"github.com/lixenwraith/undertow/parameter"
)

const zoneCount = 4

func main() {
	seedFlag := flag.Int64("seed", 0, "ghost noise seed; 0 picks one from the wall clock")
	durationFlag := flag.Duration("duration", 2*time.Minute, "simulated session length")
	hzFlag := flag.Float64("hz", 60, "simulated tick rate")
	flag.Parse()

	if *hzFlag <= 0 || *durationFlag <= 0 {
		fmt.Fprintln(os.Stderr, "undertow-sim: -hz and -duration must be positive")
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	log := logger.With("session", uuid.NewString())

	log.Info("ghost session starting",
		"seed", seed,
		"duration", durationFlag.String(),
		"hz", *hzFlag)

	stats := run(seed, *durationFlag, *hzFlag, log)
	printReport(os.Stdout, stats)
}

// run executes one complete ghost session. The clock is simulated and every
// input is derived from the seeded noise layers, so the run is a pure
// function of (seed, duration, hz); wall time only affects how long it takes
// to compute.
func run(seed int64, duration time.Duration, hz float64, log *slog.Logger) *runStats {
	mock := engine.NewMockTimeProvider(time.Unix(0, 0).UTC())
	eng := engine.New(engine.WithTimeProvider(mock))

	tr := newTracer(log)
	eng.Subscribe(tr)

	g := newGhost(seed)
	dt := 1 / hz
	tickDur := time.Duration(float64(time.Second) / hz)
	ticks := int64(math.Round(duration.Seconds() * hz))
	half := ticks / 2

	st := &runStats{seed: seed, hz: hz, tracer: tr}

	zone := 0
	shifted := false
	for i := int64(0); i < ticks; i++ {
		t := float64(i) * dt
		mock.Advance(tickDur)

		ges := g.step(t, dt)
		if ges.scrolled {
			eng.OnScroll(ges.offset)
			st.scrolls++
		}
		if ges.moved {
			eng.OnPointerMove(ges.x, ges.y)
			st.moves++
		}
		if ges.clicked {
			eng.OnPointerDown()
			st.clicks++
		}

		// Follow the scroll depth into zone tiers the way a visual consumer
		// would: ask every tick, and count the ticks spent held at the gate.
		if wanted := zoneFor(g.offset); wanted != zone {
			if eng.RequestTransition() {
				zone = wanted
				st.zoneCommits++
			} else {
				st.refusedTicks++
			}
		}

		// Narrative stand-in: the anomaly fires once, mid-session.
		if !shifted && i >= half {
			eng.TriggerPerceptionShift()
			shifted = true
		}

		eng.Update(dt)
		st.phaseSeconds[eng.Phase()] += dt
	}

	st.ticks = ticks
	st.uptime = eng.Uptime()
	st.phase = eng.Phase()
	st.channels = eng.Channels()
	st.unlocks = eng.Unlocks()
	st.cadenceHz, st.cadencePower = eng.ScrollCadence()
	return st
}

// zoneFor maps a scroll offset to its quarter-page tier, clamped to the
// valid range.
func zoneFor(offset float64) int {
	tier := int(offset / (parameter.VirtualPageHeight / zoneCount))
	if tier < 0 {
		return 0
	}
	if tier >= zoneCount {
		return zoneCount - 1
	}
	return tier
}
