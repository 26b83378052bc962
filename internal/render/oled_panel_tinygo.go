//go:build tinygo

package render

import (
	"image"
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

// OLEDPanel presents the canvas on a 128x64 SSD1306 over I2C. Background
// pixels are dark, foreground pixels lit.
type OLEDPanel struct {
	Bus     *machine.I2C
	Address uint16

	setPixel func(x, y int16, c color.RGBA)
	clear    func()
	display  func() error
}

func NewOLEDPanel(bus *machine.I2C, address uint16) *OLEDPanel {
	if address == 0 {
		address = 0x3C
	}
	return &OLEDPanel{Bus: bus, Address: address}
}

func (p *OLEDPanel) Open() error {
	if err := p.Bus.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz}); err != nil {
		return err
	}
	// The controller needs a moment after a cold boot.
	time.Sleep(10 * time.Millisecond)
	dev := ssd1306.NewI2C(p.Bus)
	dev.Configure(ssd1306.Config{
		Address:  p.Address,
		Width:    int16(CanvasWidth),
		Height:   int16(CanvasHeight),
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	p.setPixel = dev.SetPixel
	p.clear = dev.ClearBuffer
	p.display = dev.Display
	return nil
}

func (p *OLEDPanel) Close() error {
	if p.clear != nil {
		p.clear()
		return p.display()
	}
	return nil
}

var (
	oledOn  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	oledOff = color.RGBA{}
)

func (p *OLEDPanel) Present(img image.Image) error {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := oledOff
			if isForeground(img.At(x, y)) {
				c = oledOn
			}
			p.setPixel(int16(x-b.Min.X), int16(y-b.Min.Y), c)
		}
	}
	return p.display()
}

func isForeground(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	fr, fg, fb, _ := Foreground.RGBA()
	return r == fr && g == fg && b == fb
}
