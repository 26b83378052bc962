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

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/rook-computer/bigclock/internal/app"
	"github.com/rook-computer/bigclock/internal/buttons"
	"github.com/rook-computer/bigclock/internal/render"
	"github.com/rook-computer/bigclock/internal/system"
)

const defaultWindowScale = 6

func main() {
	rootFlagSet := flag.NewFlagSet("bigclock-sim", flag.ExitOnError)
	rootLog := rootFlagSet.String("log-file", "", "append simulator logs to this file")

	termFlagSet := flag.NewFlagSet("bigclock-sim term", flag.ExitOnError)
	termDebug := termFlagSet.Bool("debug", false, "log every frame and ignored key")

	windowFlagSet := flag.NewFlagSet("bigclock-sim window", flag.ExitOnError)
	windowDebug := windowFlagSet.Bool("debug", false, "log every frame and ignored key")
	windowScale := windowFlagSet.Int("scale", defaultWindowScale, "window pixels per canvas pixel")

	termCmd := &ffcli.Command{
		Name:       "term",
		ShortUsage: "bigclock-sim term [flags]",
		ShortHelp:  "Draw the clock in this terminal",
		FlagSet:    termFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			return runTerm(ctx, *rootLog, *termDebug)
		},
	}

	windowCmd := &ffcli.Command{
		Name:       "window",
		ShortUsage: "bigclock-sim window [flags]",
		ShortHelp:  "Draw the clock in a desktop window",
		FlagSet:    windowFlagSet,
		Exec: func(ctx context.Context, args []string) error {
			return runWindow(ctx, *rootLog, *windowDebug, *windowScale)
		},
	}

	rootCmd := &ffcli.Command{
		ShortUsage:  "bigclock-sim [flags] <subcommand>",
		ShortHelp:   "Run the clock against a simulated display",
		LongHelp:    "Controls:\n  Esc/Backspace   Back (exits)\n  Enter/Space     Ok\n  Arrows          Up/Down/Left/Right",
		FlagSet:     rootFlagSet,
		Subcommands: []*ffcli.Command{termCmd, windowCmd},
		Exec: func(ctx context.Context, args []string) error {
			return runTerm(ctx, *rootLog, false)
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ParseAndRun(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func openLogger(path string) (app.Logger, func(), error) {
	if path == "" {
		return app.NoopLogger{}, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return app.NewFileLogger(f), func() { _ = f.Close() }, nil
}

func runTerm(ctx context.Context, logPath string, debug bool) error {
	logger, closeLog, err := openLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer s.Fini()

	clock := clockwork.NewRealClock()
	input := buttons.NewTermSource(s)
	input.Clock = clock
	viewport := render.NewViewPort(render.NewTermPanel(s), input)
	viewport.Logger = logger
	viewport.Debug = debug

	a := app.New(clock, viewport, system.LogNotifier{Logger: logger})
	a.Logger = logger
	a.Debug = debug
	return a.Run(ctx)
}

// runWindow keeps ebiten on the calling goroutine and runs the app beside it.
func runWindow(ctx context.Context, logPath string, debug bool, scale int) error {
	logger, closeLog, err := openLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	clock := clockwork.NewRealClock()
	panel := render.NewWindowPanel("bigclock", scale)
	panel.Clock = clock
	viewport := render.NewViewPort(panel, panel)
	viewport.Logger = logger
	viewport.Debug = debug

	a := app.New(clock, viewport, system.LogNotifier{Logger: logger})
	a.Logger = logger
	a.Debug = debug

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	appErr := make(chan error, 1)
	go func() {
		appErr <- a.Run(ctx)
		// Closes the window once the app has torn down.
		cancel()
	}()

	winErr := panel.Run(ctx)
	cancel()
	return errors.Join(winErr, <-appErr)
}
