//go:build !tinygo

package render

import (
	"context"
	"image"
	"image/draw"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rook-computer/bigclock/internal/buttons"
)

// WindowPanel shows the canvas in a desktop window and reads the keyboard of
// that window, so it serves as both the Panel and the buttons.Source of a
// ViewPort. Run must be called from the main goroutine.
type WindowPanel struct {
	Title   string
	Scale   int
	Clock   clockwork.Clock
	Tracker buttons.TrackerConfig

	mu      sync.Mutex
	frame   *image.RGBA
	tracker *buttons.Tracker
	closed  bool
	done    chan struct{}
}

func NewWindowPanel(title string, scale int) *WindowPanel {
	if scale <= 0 {
		scale = 4
	}
	return &WindowPanel{Title: title, Scale: scale, done: make(chan struct{})}
}

func (p *WindowPanel) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frame = image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	draw.Draw(p.frame, p.frame.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	return nil
}

// Close makes a running window exit on its next update.
func (p *WindowPanel) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.closed {
		p.closed = true
		close(p.done)
	}
	return nil
}

func (p *WindowPanel) Present(img image.Image) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.frame == nil || p.frame.Bounds() != img.Bounds() {
		p.frame = image.NewRGBA(img.Bounds())
	}
	draw.Draw(p.frame, img.Bounds(), img, img.Bounds().Min, draw.Src)
	return nil
}

func (p *WindowPanel) Start(ctx context.Context, emit func(buttons.Event)) error {
	p.mu.Lock()
	p.tracker = buttons.NewTracker(p.Clock, p.Tracker, emit)
	p.mu.Unlock()
	return nil
}

func (p *WindowPanel) Stop() error {
	p.mu.Lock()
	t := p.tracker
	p.tracker = nil
	p.mu.Unlock()
	if t != nil {
		t.Reset()
	}
	return nil
}

func (p *WindowPanel) keys() *buttons.Tracker {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tracker
}

// Done is closed once the panel is closed.
func (p *WindowPanel) Done() <-chan struct{} { return p.done }
