//go:build !tinygo && !cgo

package render

import (
	"context"
	"errors"
)

// Run is unavailable without cgo; ebiten needs it on desktop platforms.
func (p *WindowPanel) Run(ctx context.Context) error {
	return errors.New("window panel requires cgo")
}
