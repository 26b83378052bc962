package layout

import "image"

// Clock holds the pixel constants of the clock face. The zero value is not
// useful; start from DefaultClock.
type Clock struct {
	ScreenWidth int
	// Margin is kept free on the left of the digits and right of the gutter.
	Margin int
	// GutterWidth is reserved on the right for the seconds indicator and AM/PM.
	GutterWidth int

	Top         int
	DigitWidth  int
	DigitHeight int
	Stroke      int
	DigitGap    int
	ColonWidth  int
	ColonGap    int

	// Seconds indicator boxes.
	Steps  int
	BarW   int
	BarH   int
	BarGap int
	BarTop int

	// Baseline offsets of the AM and PM slots below the indicator column.
	AMBaseline int
	PMBaseline int
}

// DefaultClock is tuned for a 128x64 panel.
var DefaultClock = Clock{
	ScreenWidth: 128,
	Margin:      2,
	GutterWidth: 12,

	Top:         2,
	DigitWidth:  23,
	DigitHeight: 60,
	Stroke:      7,
	DigitGap:    3,
	ColonWidth:  6,
	ColonGap:    2,

	Steps:  5,
	BarW:   6,
	BarH:   8,
	BarGap: 1,
	BarTop: 2,

	AMBaseline: 7,
	PMBaseline: 15,
}

// Face is a computed clock layout.
type Face struct {
	// Digits are hour tens, hour ones, minute tens, minute ones.
	Digits [4]image.Rectangle
	Colon  image.Rectangle
	// Gutter spans from RightEdge to the screen edge.
	Gutter    image.Rectangle
	RightEdge int
}

// Compute places the digit cells left to right and carves the gutter off
// the right side.
func (c Clock) Compute() Face {
	screen := image.Rect(0, 0, c.ScreenWidth, c.Top+c.DigitHeight)
	_, gutter := SplitVertical(screen, c.ScreenWidth-c.Margin-c.GutterWidth)

	xH0 := c.Margin
	xH1 := xH0 + c.DigitWidth + c.DigitGap
	cx := xH1 + c.DigitWidth + c.ColonGap
	xM0 := cx + c.ColonWidth + c.ColonGap
	xM1 := xM0 + c.DigitWidth + c.DigitGap

	cell := func(x int) image.Rectangle { return Box(x, c.Top, c.DigitWidth, c.DigitHeight) }
	return Face{
		Digits:    [4]image.Rectangle{cell(xH0), cell(xH1), cell(xM0), cell(xM1)},
		Colon:     Box(cx, c.Top, c.ColonWidth, c.DigitHeight),
		Gutter:    gutter,
		RightEdge: gutter.Min.X,
	}
}

// Fits reports whether the last digit cell stays clear of the gutter.
func (f Face) Fits() bool { return f.Digits[3].Max.X <= f.RightEdge }

// Bar returns the i-th seconds indicator box, counted from the top.
func (c Clock) Bar(f Face, i int) image.Rectangle {
	x := f.RightEdge + (c.GutterWidth-c.BarW)/2
	y := c.BarTop + i*(c.BarH+c.BarGap)
	return Box(x, y, c.BarW, c.BarH)
}

// LabelOrigin returns the x position and the top of the AM/PM label slots,
// just below a full indicator column.
func (c Clock) LabelOrigin(f Face) (x, y0 int) {
	colH := c.Steps*c.BarH + (c.Steps-1)*c.BarGap
	return f.RightEdge + 1, c.BarTop + colH + 2
}
