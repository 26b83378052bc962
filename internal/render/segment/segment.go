// Package segment draws seven-segment style digits out of filled boxes.
package segment

import "github.com/rook-computer/bigclock/internal/render"

// Digit is 0..9, or Blank for a suppressed position.
type Digit int

const Blank Digit = -1

// Segment bit positions.
const (
	SegA = iota // top
	SegB        // upper right
	SegC        // lower right
	SegD        // bottom
	SegE        // lower left
	SegF        // upper left
	SegG        // middle
)

var masks = [10]uint8{
	/*0*/ 0b0111111,
	/*1*/ 0b0000110,
	/*2*/ 0b1011011,
	/*3*/ 0b1001111,
	/*4*/ 0b1100110,
	/*5*/ 0b1101101,
	/*6*/ 0b1111101,
	/*7*/ 0b0000111,
	/*8*/ 0b1111111,
	/*9*/ 0b1101111,
}

// Mask returns the segment bits of d; Blank and out-of-range digits have none.
func Mask(d Digit) uint8 {
	if d < 0 || d > 9 {
		return 0
	}
	return masks[d]
}

// Lit reports whether segment seg is on for d.
func Lit(d Digit, seg int) bool { return Mask(d)&(1<<seg) != 0 }

// Draw renders d into the w x h cell at (x, y) with stroke thickness t.
// Blank and out-of-range digits draw nothing.
func Draw(r render.Drawer, x, y, w, h, t int, d Digit) {
	if d < 0 || d > 9 {
		return
	}
	m := masks[d]
	half := h / 2
	ym := y + half

	// Horizontal segments span the full width so corners read solid.
	if m&(1<<SegA) != 0 {
		r.DrawBox(x, y, w, t)
	}
	if m&(1<<SegG) != 0 {
		r.DrawBox(x, ym-(t/2), w, t)
	}
	if m&(1<<SegD) != 0 {
		r.DrawBox(x, y+h-t, w, t)
	}

	// Vertical segments are half height each and meet the middle bar.
	if m&(1<<SegF) != 0 {
		r.DrawBox(x, y, t, half)
	}
	if m&(1<<SegB) != 0 {
		r.DrawBox(x+w-t, y, t, half)
	}
	if m&(1<<SegE) != 0 {
		r.DrawBox(x, y+h-half, t, half)
	}
	if m&(1<<SegC) != 0 {
		r.DrawBox(x+w-t, y+h-half, t, half)
	}
}

// Colon dot offsets from the top of the digit row.
const (
	ColonUpper = 16
	ColonLower = 40
)

// DrawColon draws the two t x t separator dots in the column at x.
func DrawColon(r render.Drawer, x, y, t int) {
	r.DrawBox(x, y+ColonUpper, t, t)
	r.DrawBox(x, y+ColonLower, t, t)
}
