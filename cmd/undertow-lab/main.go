package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/undertow/audio"
	"github.com/lixenwraith/undertow/engine"
	"github.com/lixenwraith/undertow/input"
	"github.com/lixenwraith/undertow/parameter"
)

var (
	muteFlag = flag.Bool("mute", false, "Start with audio cues muted")
	logFlag  = flag.String("log", "", "Append lifecycle logs to this file (the screen owns the terminal)")
)

// maxFrameDt caps the wall-clock step fed to the engine so a stalled or
// backgrounded terminal produces a slow-motion catch-up instead of a jump.
// Purely cosmetic; the engine stays bounded under any dt.
const maxFrameDt = 0.1

func main() {
	flag.Parse()

	logger, closeLog, err := openLogger(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nUNDERTOW-LAB CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)

	width, height := screen.Size()
	logger.Info("lab starting", "width", width, "height", height, "muted", *muteFlag)

	eng := engine.New()

	cues := audio.NewCues()
	cues.SetMuted(*muteFlag)
	if err := cues.Initialize(); err != nil {
		// Non-fatal, the lab runs without sound
		logger.Warn("audio initialization failed, continuing without audio", "error", err)
	}
	defer cues.Cleanup()
	eng.Subscribe(cues)

	lab := newLab(screen, eng, input.NewAdapter(width, height), cues, logger)
	eng.Subscribe(lab)

	run(screen, eng, lab)
	logger.Info("lab stopped", "uptime", eng.Uptime(), "ticks", eng.Tick(), "phase", eng.Phase().String())
}

func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log init: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}

func run(screen tcell.Screen, eng *engine.Engine, lab *Lab) {
	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !lab.apply(ev) {
				return
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDt {
				dt = maxFrameDt
			}

			eng.Update(dt)
			lab.step(dt)
			lab.draw()
		}
	}
}
