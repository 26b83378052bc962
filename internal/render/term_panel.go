//go:build !tinygo

package render

import (
	"errors"
	"image"

	"github.com/gdamore/tcell/v2"
)

// halfBlock paints the top pixel with the foreground and the bottom pixel
// with the background, so one terminal cell shows two canvas rows.
const halfBlock = '▀'

// TermPanel presents the canvas in a terminal. The caller owns the tcell
// screen (Init/Fini) because the same screen also delivers key events.
type TermPanel struct {
	Screen tcell.Screen
}

func NewTermPanel(screen tcell.Screen) *TermPanel { return &TermPanel{Screen: screen} }

func (p *TermPanel) Open() error {
	if p.Screen == nil {
		return errors.New("term panel has no screen")
	}
	p.Screen.HideCursor()
	p.Screen.Clear()
	return nil
}

func (p *TermPanel) Close() error {
	if p.Screen != nil {
		p.Screen.Clear()
		p.Screen.Show()
	}
	return nil
}

func (p *TermPanel) Present(img image.Image) error {
	if p.Screen == nil {
		return errors.New("term panel has no screen")
	}
	b := img.Bounds()
	for row := 0; row*2 < b.Dy(); row++ {
		y := b.Min.Y + row*2
		for col := 0; col < b.Dx(); col++ {
			x := b.Min.X + col
			top := termColor(img, x, y)
			bottom := termColor(img, x, y+1)
			if y+1 >= b.Max.Y {
				bottom = tcell.ColorReset
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.Screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	p.Screen.Show()
	return nil
}

func termColor(img image.Image, x, y int) tcell.Color {
	r, g, b, _ := img.At(x, y).RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
