package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

// PrimaryFaceSize is the pixel size of FontPrimary.
const PrimaryFaceSize = 10

var (
	primaryOnce sync.Once
	primaryFace font.Face
	primaryErr  error
)

// PrimaryFace returns the Go Mono face used for FontPrimary. When the
// embedded TrueType data cannot be parsed it returns basicfont.Face7x13 along
// with the parse error.
func PrimaryFace() (font.Face, error) {
	primaryOnce.Do(func() {
		tt, err := truetype.Parse(gomono.TTF)
		if err != nil {
			primaryFace = basicfont.Face7x13
			primaryErr = fmt.Errorf("parse go mono: %w", err)
			return
		}
		primaryFace = truetype.NewFace(tt, &truetype.Options{
			Size:    PrimaryFaceSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return primaryFace, primaryErr
}
