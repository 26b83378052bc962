package render

import "image"

type OpKind int

const (
	OpClear OpKind = iota
	OpBox
	OpFrame
	OpText
)

// Op is one recorded drawing primitive.
type Op struct {
	Kind OpKind
	Rect image.Rectangle
	Text string
	Font Font
}

// Frame is a Drawer that records the primitives of a single redraw instead
// of rasterizing them.
type Frame struct {
	Width  int
	Height int
	Ops    []Op
}

func NewFrame() *Frame { return &Frame{Width: CanvasWidth, Height: CanvasHeight} }

func (f *Frame) Size() (int, int) { return f.Width, f.Height }

func (f *Frame) Clear() { f.Ops = append(f.Ops, Op{Kind: OpClear}) }

func (f *Frame) DrawBox(x, y, w, h int) {
	f.Ops = append(f.Ops, Op{Kind: OpBox, Rect: image.Rect(x, y, x+w, y+h)})
}

func (f *Frame) DrawFrame(x, y, w, h int) {
	f.Ops = append(f.Ops, Op{Kind: OpFrame, Rect: image.Rect(x, y, x+w, y+h)})
}

func (f *Frame) DrawText(x, y int, text string, font Font) {
	f.Ops = append(f.Ops, Op{Kind: OpText, Rect: image.Rect(x, y, x, y), Text: text, Font: font})
}

// Boxes returns the filled rectangles in draw order.
func (f *Frame) Boxes() []image.Rectangle { return f.rects(OpBox) }

// Frames returns the outlined rectangles in draw order.
func (f *Frame) Frames() []image.Rectangle { return f.rects(OpFrame) }

// Texts returns the text ops in draw order.
func (f *Frame) Texts() []Op {
	var out []Op
	for _, op := range f.Ops {
		if op.Kind == OpText {
			out = append(out, op)
		}
	}
	return out
}

func (f *Frame) rects(kind OpKind) []image.Rectangle {
	var out []image.Rectangle
	for _, op := range f.Ops {
		if op.Kind == kind {
			out = append(out, op.Rect)
		}
	}
	return out
}

// Reset drops recorded ops so the Frame can be reused.
func (f *Frame) Reset() { f.Ops = f.Ops[:0] }
