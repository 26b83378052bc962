package render

import "image"

// fitScaled returns where src lands inside dst when scaled by the largest
// integer factor (at least 1) that fits, centred.
func fitScaled(dst, src image.Rectangle) image.Rectangle {
	if src.Empty() {
		return image.Rectangle{}
	}
	scale := dst.Dx() / src.Dx()
	if sy := dst.Dy() / src.Dy(); sy < scale {
		scale = sy
	}
	if scale < 1 {
		scale = 1
	}
	w := src.Dx() * scale
	h := src.Dy() * scale
	x := dst.Min.X + (dst.Dx()-w)/2
	y := dst.Min.Y + (dst.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
