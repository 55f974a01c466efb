package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/undertow/engine"
)

// runStats aggregates one session's counters and final engine state for the
// end-of-run report.
type runStats struct {
	seed int64
	hz   float64

	ticks        int64
	scrolls      int64
	moves        int64
	clicks       int64
	zoneCommits  int
	refusedTicks int64

	phaseSeconds [int(engine.PhaseTransformation) + 1]float64

	uptime       float64
	phase        engine.Phase
	channels     engine.Channels
	unlocks      engine.Unlocks
	cadenceHz    float64
	cadencePower float64

	tracer *tracer
}

const (
	reportEdge = "══════════════════════════════════════════════════════════"
	reportRule = "──────────────────────────────────────────────────────────"
)

func printReport(w io.Writer, st *runStats) {
	fmt.Fprintf(w, "\nGhost Session Report (seed %d)\n", st.seed)
	fmt.Fprintln(w, reportEdge)
	fmt.Fprintf(w, "%-12s %s at %g Hz (%s ticks)\n",
		"simulated", formatSeconds(st.uptime), st.hz, humanize.Comma(st.ticks))
	fmt.Fprintf(w, "%-12s %s scrolls, %s pointer moves, %s presses\n",
		"gestures", humanize.Comma(st.scrolls), humanize.Comma(st.moves), humanize.Comma(st.clicks))
	fmt.Fprintf(w, "%-12s %d commits, %d lock-outs, %d reopens, %s ticks refused\n",
		"zone gate", st.zoneCommits, st.tracer.gateLocks, st.tracer.gateReopens, humanize.Comma(st.refusedTicks))
	fmt.Fprintf(w, "%-12s %s\n", "shift", shiftState(st.tracer))

	fmt.Fprintln(w, reportRule)
	fmt.Fprintf(w, " %-15s %10s %8s\n", "phase", "time", "share")
	for i, secs := range st.phaseSeconds {
		share := 0.0
		if st.uptime > 0 {
			share = secs / st.uptime * 100
		}
		marker := " "
		if engine.Phase(i) == st.phase {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%-15s %9ss %7s%%\n",
			marker, engine.Phase(i), humanize.FtoaWithDigits(secs, 1), humanize.FtoaWithDigits(share, 1))
	}

	fmt.Fprintln(w, reportRule)
	ch := st.channels
	fmt.Fprintf(w, "%-12s rush %.2f  linger %.2f  hesitation %.2f  mouse %.2f\n",
		"channels", ch.Rush, ch.Linger, ch.Hesitation, ch.MouseIntensity)
	fmt.Fprintf(w, "%-12s rhythm %+.2f  timescale %.2f\n",
		"", ch.ExplorationRhythm, ch.TimeScale)
	fmt.Fprintf(w, "%-12s guide-fish %s  data-panels %s  resonance %.2f\n",
		"unlocks", yesNo(st.unlocks.GuideFishUnlocked), yesNo(st.unlocks.DataPanelsExpanded), st.unlocks.BeamResonance)
	if st.cadenceHz > 0 {
		fmt.Fprintf(w, "%-12s %.2f Hz (power %.2f)\n", "cadence", st.cadenceHz, st.cadencePower)
	} else {
		fmt.Fprintf(w, "%-12s too sparse to read\n", "cadence")
	}
	fmt.Fprintln(w, reportEdge)
}

func shiftState(tr *tracer) string {
	switch {
	case tr.shiftDone:
		return "completed"
	case tr.shiftStarted:
		return "still running at session end"
	default:
		return "never fired"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).Truncate(time.Millisecond).String()
}
