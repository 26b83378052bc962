package render

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/rook-computer/bigclock/internal/buttons"
)

// ViewPort is a full-screen Renderer. It rasterizes the current Screen into
// an offscreen Canvas and hands the result to a Panel each time it is marked
// dirty. Input from its Source is forwarded to the input callback.
type ViewPort struct {
	Panel  Panel
	Input  buttons.Source
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
	Debug bool

	mu      sync.Mutex
	current Screen
	onInput func(buttons.Event)

	canvas  *Canvas
	dirty   chan struct{}
	running atomic.Bool
	frames  atomic.Uint64
}

func NewViewPort(panel Panel, input buttons.Source) *ViewPort {
	return &ViewPort{Panel: panel, Input: input, dirty: make(chan struct{}, 1)}
}

func (vp *ViewPort) Start(ctx context.Context) error {
	if vp.Panel == nil {
		return errors.New("viewport has no panel")
	}
	if vp.dirty == nil {
		vp.dirty = make(chan struct{}, 1)
	}
	if err := vp.Panel.Open(); err != nil {
		return err
	}
	vp.canvas = NewCanvas(CanvasWidth, CanvasHeight)
	vp.canvas.Logger = vp.Logger
	if vp.Input != nil {
		if err := vp.Input.Start(ctx, vp.dispatchInput); err != nil {
			_ = vp.Panel.Close()
			return err
		}
	}
	vp.running.Store(true)
	if vp.Logger != nil {
		vp.Logger.Infof("viewport", "registered %dx%d", CanvasWidth, CanvasHeight)
	}
	// First frame without waiting for the next tick.
	vp.Update()
	return nil
}

func (vp *ViewPort) Stop() error {
	if !vp.running.CompareAndSwap(true, false) {
		return nil
	}
	var errs []error
	if vp.Input != nil {
		if err := vp.Input.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := vp.Panel.Close(); err != nil {
		errs = append(errs, err)
	}
	if vp.Logger != nil {
		vp.Logger.Infof("viewport", "unregistered after %d frames", vp.frames.Load())
	}
	return errors.Join(errs...)
}

// SetScreen sets the draw callback.
func (vp *ViewPort) SetScreen(screen Screen) {
	vp.mu.Lock()
	vp.current = screen
	vp.mu.Unlock()
}

func (vp *ViewPort) SetInputCallback(fn func(buttons.Event)) {
	vp.mu.Lock()
	vp.onInput = fn
	vp.mu.Unlock()
}

func (vp *ViewPort) dispatchInput(ev buttons.Event) {
	vp.mu.Lock()
	fn := vp.onInput
	vp.mu.Unlock()
	if fn != nil {
		fn(ev)
	}
}

// Update marks the viewport dirty. Marks made while a redraw is pending
// collapse into one.
func (vp *ViewPort) Update() {
	select {
	case vp.dirty <- struct{}{}:
	default:
	}
}

// RunLoop redraws once per dirty mark until ctx is done.
func (vp *ViewPort) RunLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-vp.dirty:
			vp.Redraw()
		}
	}
}

func (vp *ViewPort) Redraw() {
	vp.mu.Lock()
	screen := vp.current
	vp.mu.Unlock()
	if !vp.running.Load() || screen == nil || vp.canvas == nil {
		return
	}
	vp.canvas.Clear()
	screen.Draw(vp.canvas)
	if err := vp.Panel.Present(vp.canvas.Image()); err != nil {
		if vp.Logger != nil {
			vp.Logger.Errorf("viewport", "present failed: %v", err)
		}
		return
	}
	n := vp.frames.Add(1)
	if vp.Debug && vp.Logger != nil {
		vp.Logger.Infof("viewport", "frame %d presented", n)
	}
}

// Frames returns how many frames have been presented.
func (vp *ViewPort) Frames() uint64 { return vp.frames.Load() }

// Canvas returns the offscreen canvas, nil before Start.
func (vp *ViewPort) Canvas() *Canvas { return vp.canvas }
