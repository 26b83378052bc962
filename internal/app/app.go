package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rook-computer/bigclock/internal/app/screens"
	"github.com/rook-computer/bigclock/internal/buttons"
	"github.com/rook-computer/bigclock/internal/render"
	"github.com/rook-computer/bigclock/internal/system"
)

// TickInterval is how often the clock face is marked for redraw.
const TickInterval = 1000 * time.Millisecond

// State is the run loop state.
type State int32

const (
	StateIdle State = iota
	StateRunning
	StateExiting
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

type App struct {
	Clock  clockwork.Clock
	Render render.Renderer
	Notify system.Notifier
	Logger Logger
	// Screen defaults to a ClockScreen on Clock.
	Screen render.Screen
	Debug  bool

	state atomic.Int32

	queue      *buttons.Queue
	inputCtx   context.Context
	stopInput  context.CancelFunc
	ticker     clockwork.Ticker
	tickerDone chan struct{}
	tickWG     sync.WaitGroup
	loopCancel context.CancelFunc
	loopWG     sync.WaitGroup
	notifyOpen bool
	registered bool
}

func New(clock clockwork.Clock, renderer render.Renderer, notifier system.Notifier) *App {
	return &App{Clock: clock, Render: renderer, Notify: notifier, Logger: NoopLogger{}}
}

// State reports the current loop state.
func (app *App) State() State { return State(app.state.Load()) }

// Run sets up the clock, blocks until the exit gesture (a short press of
// Back) or ctx is done, then tears everything down.
func (app *App) Run(ctx context.Context) error {
	if app.Clock == nil {
		app.Clock = clockwork.NewRealClock()
	}
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Render == nil {
		app.Render = &render.NoopRenderer{}
	}
	if app.Notify == nil {
		app.Notify = system.NoopNotifier{}
	}
	if app.Screen == nil {
		app.Screen = screens.NewClockScreen(app.Clock)
	}

	defer app.teardown()
	if err := app.setup(ctx); err != nil {
		app.Logger.Errorf("app", "setup failed: %v", err)
		return err
	}
	app.state.Store(int32(StateRunning))
	app.Logger.Infof("app", "running")

	err := app.loop(ctx)
	app.state.Store(int32(StateExiting))
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

func (app *App) setup(ctx context.Context) error {
	app.queue = buttons.NewQueue(buttons.QueueCapacity)
	app.inputCtx, app.stopInput = context.WithCancel(context.Background())

	app.Render.SetScreen(app.Screen)
	app.Render.SetInputCallback(app.forwardInput)
	if err := app.Screen.Start(ctx); err != nil {
		return fmt.Errorf("screen start: %w", err)
	}
	if err := app.Render.Start(ctx); err != nil {
		return fmt.Errorf("surface start: %w", err)
	}
	app.registered = true
	loopCtx, cancel := context.WithCancel(context.Background())
	app.loopCancel = cancel
	app.loopWG.Add(1)
	go func() {
		defer app.loopWG.Done()
		app.Render.RunLoop(loopCtx)
	}()

	app.ticker = app.Clock.NewTicker(TickInterval)
	app.tickerDone = make(chan struct{})
	app.tickWG.Add(1)
	go func() {
		defer app.tickWG.Done()
		app.tick(app.ticker, app.tickerDone)
	}()

	if err := app.Notify.Open(); err != nil {
		return fmt.Errorf("notifier open: %w", err)
	}
	app.notifyOpen = true
	if err := app.Notify.Message(system.BacklightEnforceOn); err != nil {
		// A missing backlight still leaves a usable clock.
		app.Logger.Errorf("app", "backlight enforce on: %v", err)
	}
	return nil
}

func (app *App) tick(t clockwork.Ticker, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case <-t.Chan():
			app.Render.Update()
		}
	}
}

// forwardInput runs on the input goroutine. It blocks while the queue is full.
func (app *App) forwardInput(ev buttons.Event) {
	if err := app.queue.Put(app.inputCtx, ev); err != nil && app.Debug {
		app.Logger.Infof("input", "dropped %s: %v", ev, err)
	}
}

func (app *App) loop(ctx context.Context) error {
	for {
		ev, err := app.queue.Get(ctx)
		if err != nil {
			return err
		}
		if IsExitGesture(ev) {
			app.Logger.Infof("app", "exit requested (%s)", ev)
			return nil
		}
		if app.Debug {
			app.Logger.Infof("input", "ignored %s", ev)
		}
	}
}

// IsExitGesture reports whether ev ends the app.
func IsExitGesture(ev buttons.Event) bool {
	return ev.Key == buttons.KeyBack && ev.Type == buttons.TypeShort
}

// teardown releases whatever setup acquired, in the fixed exit order.
func (app *App) teardown() {
	app.state.Store(int32(StateExiting))
	if app.stopInput != nil {
		app.stopInput()
	}

	if app.ticker != nil {
		app.ticker.Stop()
		close(app.tickerDone)
		// No Update may follow once the timer is released.
		app.tickWG.Wait()
		app.ticker = nil
	}

	if app.loopCancel != nil {
		app.loopCancel()
		app.loopWG.Wait()
		app.loopCancel = nil
	}
	if app.registered {
		if err := app.Render.Stop(); err != nil {
			app.Logger.Errorf("app", "surface stop: %v", err)
		}
		app.registered = false
	}
	if app.Screen != nil {
		if err := app.Screen.Stop(); err != nil {
			app.Logger.Errorf("app", "screen stop: %v", err)
		}
	}

	if app.queue != nil {
		app.queue.Free()
	}

	if app.notifyOpen {
		if err := app.Notify.Message(system.BacklightEnforceAuto); err != nil {
			app.Logger.Errorf("app", "backlight enforce auto: %v", err)
		}
		if err := app.Notify.Message(system.ResetDisplay); err != nil {
			app.Logger.Errorf("app", "reset display: %v", err)
		}
		if err := app.Notify.Close(); err != nil {
			app.Logger.Errorf("app", "notifier close: %v", err)
		}
		app.notifyOpen = false
	}
	app.Logger.Infof("app", "stopped")
}

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

type FileLogger struct {
	mu *sync.Mutex
	w  io.Writer
}

func NewFileLogger(w io.Writer) FileLogger { return FileLogger{mu: &sync.Mutex{}, w: w} }
func (l FileLogger) Infof(component string, format string, args ...interface{}) {
	l.write("INFO", component, format, args...)
}
func (l FileLogger) Errorf(component string, format string, args ...interface{}) {
	l.write("ERROR", component, format, args...)
}

func (l FileLogger) write(level, component, format string, args ...interface{}) {
	if l.mu != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
	}
	writeLog(l.w, level, component, format, args...)
}

func writeLog(w io.Writer, level, component, format string, args ...interface{}) {
	if w == nil {
		return
	}
	timestamp := time.Now().Format(time.RFC3339)
	msg := fmt.Sprintf(format, args...)
	_, _ = io.WriteString(w, timestamp+" ["+level+"] "+component+": "+msg+"\n")
}
