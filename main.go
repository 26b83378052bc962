//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/rook-computer/bigclock/internal/app"
	"github.com/rook-computer/bigclock/internal/buttons"
	"github.com/rook-computer/bigclock/internal/config"
	"github.com/rook-computer/bigclock/internal/render"
	"github.com/rook-computer/bigclock/internal/system"
)

func main() {
	cfg, err := config.Parse("bigclock", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if cfg.Debug {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := clockwork.NewRealClock()
	keys := buttons.TrackerConfig{LongPress: cfg.LongPress, RepeatPeriod: cfg.Repeat}

	panel := render.NewFBPanel(cfg.Framebuffer)
	panel.Logger = logger
	input := buttons.NewEvdevSource(cfg.InputGlob)
	input.Clock = clock
	input.Tracker = keys
	input.Logger = logger
	viewport := render.NewViewPort(panel, input)
	viewport.Logger = logger
	viewport.Debug = cfg.Debug

	notifier := system.NewConsoleNotifier(cfg.Backlight)
	notifier.BlankMinutes = cfg.BlankMinutes
	notifier.Script = cfg.BacklightScript
	notifier.Logger = logger

	a := app.New(clock, viewport, notifier)
	a.Logger = logger
	a.Debug = cfg.Debug

	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "bigclock:", err)
		os.Exit(1)
	}
}
