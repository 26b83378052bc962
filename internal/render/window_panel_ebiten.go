//go:build !tinygo && cgo

package render

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rook-computer/bigclock/internal/buttons"
)

var windowKeys = map[ebiten.Key]buttons.Key{
	ebiten.KeyArrowUp:    buttons.KeyUp,
	ebiten.KeyArrowDown:  buttons.KeyDown,
	ebiten.KeyArrowLeft:  buttons.KeyLeft,
	ebiten.KeyArrowRight: buttons.KeyRight,
	ebiten.KeyEnter:      buttons.KeyOk,
	ebiten.KeySpace:      buttons.KeyOk,
	ebiten.KeyEscape:     buttons.KeyBack,
	ebiten.KeyBackspace:  buttons.KeyBack,
}

// Run opens the window and blocks until it is closed by the user, by Close
// or by ctx.
func (p *WindowPanel) Run(ctx context.Context) error {
	ebiten.SetWindowTitle(p.Title)
	ebiten.SetWindowSize(CanvasWidth*p.Scale, CanvasHeight*p.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(&windowGame{p: p, ctx: ctx})
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type windowGame struct {
	p   *WindowPanel
	ctx context.Context
	img *ebiten.Image
}

func (g *windowGame) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	case <-g.p.Done():
		return ebiten.Termination
	default:
	}
	tracker := g.p.keys()
	if tracker == nil {
		return nil
	}
	for ek, k := range windowKeys {
		if inpututil.IsKeyJustPressed(ek) {
			tracker.Press(k)
		}
		if inpututil.IsKeyJustReleased(ek) {
			tracker.Release(k)
		}
	}
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	g.p.mu.Lock()
	defer g.p.mu.Unlock()
	if g.p.frame == nil {
		return
	}
	b := g.p.frame.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.img.WritePixels(g.p.frame.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return CanvasWidth, CanvasHeight
}
