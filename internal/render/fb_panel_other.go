//go:build !linux && !tinygo

package render

import (
	"errors"
	"image"
)

var errNoFramebuffer = errors.New("framebuffer panel requires linux")

// FBPanel is unavailable off Linux; Open always fails.
type FBPanel struct {
	Device string
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewFBPanel(device string) *FBPanel { return &FBPanel{Device: device} }

func (p *FBPanel) Open() error                   { return errNoFramebuffer }
func (p *FBPanel) Close() error                  { return nil }
func (p *FBPanel) Present(img image.Image) error { return errNoFramebuffer }
