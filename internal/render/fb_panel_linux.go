//go:build linux && !tinygo

package render

import (
	"fmt"
	"image"

	fb "github.com/gonutz/framebuffer"
	"github.com/rook-computer/bigclock/internal/system"
	xdraw "golang.org/x/image/draw"
)

// FBPanel presents the canvas on a Linux framebuffer device, scaled by the
// largest integer factor that fits and centred.
type FBPanel struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	fbDev *fb.Device
}

func NewFBPanel(device string) *FBPanel {
	if device == "" {
		device = "/dev/fb0"
	}
	return &FBPanel{Device: device}
}

func (p *FBPanel) Open() error {
	dev, err := fb.Open(p.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", p.Device, err)
	}
	p.fbDev = dev
	if p.Logger != nil {
		bounds := dev.Bounds()
		p.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())
	}
	// Take the console over so the kernel does not draw text or a cursor on
	// top of the clock. ResetDisplay gives it back.
	_ = system.SetGraphicsModeWithLog(p.Logger)
	_ = system.HideCursorWithLog(p.Logger)
	return nil
}

func (p *FBPanel) Close() error {
	if p.fbDev != nil {
		p.fbDev.Close()
		p.fbDev = nil
	}
	return nil
}

func (p *FBPanel) Present(img image.Image) error {
	if p.fbDev == nil {
		return fmt.Errorf("framebuffer %s not open", p.Device)
	}
	blitToFB(p.fbDev, img)
	return nil
}

// blitToFB fills dev with the background and scales img into the centred
// integer-scaled area.
func blitToFB(dev *fb.Device, img image.Image) {
	bounds := dev.Bounds()
	place := fitScaled(bounds, img.Bounds())
	xdraw.Draw(dev, bounds, image.NewUniform(Background), image.Point{}, xdraw.Src)
	xdraw.NearestNeighbor.Scale(dev, place, img, img.Bounds(), xdraw.Src, nil)
}
