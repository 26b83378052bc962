package render

import "image/color"

// Global render configuration for colors and logical canvas.
var (
	// Monochrome LCD look: dark pixels on an amber backlight.
	Foreground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Background = color.RGBA{R: 0xFF, G: 0x82, B: 0x00, A: 0xFF} // #ff8200

	// Logical canvas size; scaled to the host display.
	CanvasWidth  = 128
	CanvasHeight = 64
)
