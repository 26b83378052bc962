package render

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	bgIndex uint8 = 0
	fgIndex uint8 = 1
)

// Canvas is a two-colour offscreen image implementing Drawer.
// All primitives clip to the canvas bounds.
type Canvas struct {
	img    *image.Paletted
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	primary font.Face
}

func NewCanvas(width, height int) *Canvas {
	palette := color.Palette{Background, Foreground}
	return &Canvas{img: image.NewPaletted(image.Rect(0, 0, width, height), palette)}
}

// Image returns the backing image. It is overwritten by the next frame.
func (c *Canvas) Image() *image.Paletted { return c.img }

// Lit reports whether the pixel at (x, y) is drawn in the foreground colour.
func (c *Canvas) Lit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return false
	}
	return c.img.ColorIndexAt(x, y) == fgIndex
}

func (c *Canvas) Size() (int, int) { return c.img.Rect.Dx(), c.img.Rect.Dy() }

func (c *Canvas) Clear() {
	for i := range c.img.Pix {
		c.img.Pix[i] = bgIndex
	}
}

func (c *Canvas) DrawBox(x, y, w, h int) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(c.img.Rect)
	if w <= 0 || h <= 0 || rect.Empty() {
		return
	}
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		row := c.img.PixOffset(rect.Min.X, py)
		for i := 0; i < rect.Dx(); i++ {
			c.img.Pix[row+i] = fgIndex
		}
	}
}

func (c *Canvas) DrawFrame(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.DrawBox(x, y, w, 1)
	c.DrawBox(x, y+h-1, w, 1)
	c.DrawBox(x, y, 1, h)
	c.DrawBox(x+w-1, y, 1, h)
}

func (c *Canvas) DrawText(x, y int, text string, f Font) {
	if text == "" {
		return
	}
	switch f {
	case FontCompact:
		tinyfont.WriteLine(canvasSink{c}, &proggy.TinySZ8pt7b, int16(x), int16(y), text, Foreground)
	default:
		if c.primary == nil {
			face, err := PrimaryFace()
			if err != nil && c.Logger != nil {
				c.Logger.Errorf("canvas", "primary font unavailable, using basicfont: %v", err)
			}
			c.primary = face
		}
		drawer := &font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(Foreground),
			Face: c.primary,
			Dot:  fixed.P(x, y),
		}
		drawer.DrawString(text)
	}
}

// canvasSink lets tinyfont paint into a Canvas.
type canvasSink struct{ c *Canvas }

func (s canvasSink) Size() (x, y int16) {
	w, h := s.c.Size()
	return int16(w), int16(h)
}

func (s canvasSink) SetPixel(x, y int16, col color.RGBA) {
	p := image.Point{X: int(x), Y: int(y)}
	if !p.In(s.c.img.Rect) {
		return
	}
	if col.A == 0 {
		s.c.img.SetColorIndex(p.X, p.Y, bgIndex)
		return
	}
	s.c.img.SetColorIndex(p.X, p.Y, fgIndex)
}

func (s canvasSink) Display() error { return nil }
