package render

import (
	"context"
	"image"

	"github.com/rook-computer/bigclock/internal/buttons"
)

// Renderer is the drawing surface owned by the app. It holds one Screen as
// its draw callback and one input callback, and redraws whenever Update marks
// it dirty.
type Renderer interface {
	// Start registers the surface with the host display and starts delivering
	// input to the input callback.
	Start(ctx context.Context) error
	// Stop unregisters the surface and releases the host display.
	Stop() error
	SetScreen(screen Screen)
	SetInputCallback(fn func(buttons.Event))
	// RunLoop is the redraw context. It blocks until ctx is done.
	RunLoop(ctx context.Context)
	// Update requests a redraw. It never blocks and is safe from any goroutine.
	Update()
	// Redraw renders the current screen immediately.
	Redraw()
}

type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(d Drawer)
}

// Panel presents a finished canvas on a host display.
type Panel interface {
	Open() error
	Close() error
	Present(img image.Image) error
}

// Stub implementations
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error         { return nil }
func (n *NoopRenderer) Stop() error                             { return nil }
func (n *NoopRenderer) SetScreen(screen Screen)                 {}
func (n *NoopRenderer) SetInputCallback(fn func(buttons.Event)) {}
func (n *NoopRenderer) RunLoop(ctx context.Context)             { <-ctx.Done() }
func (n *NoopRenderer) Update()                                 {}
func (n *NoopRenderer) Redraw()                                 {}

// Font selects one of the built-in text faces.
type Font int

const (
	FontPrimary Font = iota
	// FontCompact is the small face used for short gutter labels.
	FontCompact
)

func (f Font) String() string {
	switch f {
	case FontPrimary:
		return "primary"
	case FontCompact:
		return "compact"
	default:
		return "unknown"
	}
}

// Drawer is what screens draw into. Coordinates are canvas pixels with the
// origin at the top-left corner.
type Drawer interface {
	// Size returns the logical canvas size in pixels.
	Size() (width int, height int)

	Clear()

	// DrawBox fills a w x h rectangle.
	DrawBox(x, y, w, h int)
	// DrawFrame outlines a w x h rectangle with a 1 px border.
	DrawFrame(x, y, w, h int)
	// DrawText draws text with its baseline at y.
	DrawText(x, y int, text string, font Font)
}
