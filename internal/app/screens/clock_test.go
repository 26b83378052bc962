package screens

import (
	"image"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rook-computer/bigclock/internal/render"
	"github.com/rook-computer/bigclock/internal/render/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drawAt(t *testing.T, hh, mm, ss int) *render.Frame {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, hh, mm, ss, 0, time.Local))
	f := render.NewFrame()
	NewClockScreen(clock).Draw(f)
	return f
}

func TestClockScreenMorning(t *testing.T) {
	f := drawAt(t, 9, 5, 23)

	// 9 (6 segments) + colon (2) + 0 (6) + 5 (5); hour tens is blank.
	boxes := f.Boxes()
	assert.Len(t, boxes, 19)
	for _, b := range boxes {
		assert.GreaterOrEqual(t, b.Min.X, 28, "nothing in the hour tens cell")
	}
	assert.Equal(t, []image.Rectangle{
		image.Rect(117, 2, 123, 10),
		image.Rect(117, 11, 123, 19),
	}, f.Frames())

	texts := f.Texts()
	require.Len(t, texts, 1)
	assert.Equal(t, "AM", texts[0].Text)
	assert.Equal(t, image.Pt(115, 55), texts[0].Rect.Min)
	assert.Equal(t, render.FontCompact, texts[0].Font)
}

func TestClockScreenNoon(t *testing.T) {
	f := drawAt(t, 12, 0, 0)

	// 1 (2) + 2 (5) + colon (2) + 0 (6) + 0 (6).
	assert.Len(t, f.Boxes(), 21)
	assert.Empty(t, f.Frames())

	texts := f.Texts()
	require.Len(t, texts, 1)
	assert.Equal(t, "PM", texts[0].Text)
	assert.Equal(t, image.Pt(115, 63), texts[0].Rect.Min)
}

func TestClockScreenEndOfDay(t *testing.T) {
	f := drawAt(t, 23, 59, 59)

	// 1 (2) + 1 (2) + colon (2) + 5 (5) + 9 (6).
	assert.Len(t, f.Boxes(), 17)
	assert.Len(t, f.Frames(), 5)
	require.Len(t, f.Texts(), 1)
	assert.Equal(t, "PM", f.Texts()[0].Text)
}

func TestClockScreenColonBetweenHoursAndMinutes(t *testing.T) {
	f := drawAt(t, 10, 10, 0)

	var colon []image.Rectangle
	for _, b := range f.Boxes() {
		if b.Min.X == 53 {
			colon = append(colon, b)
		}
	}
	assert.Equal(t, []image.Rectangle{
		image.Rect(53, 18, 59, 24),
		image.Rect(53, 42, 59, 48),
	}, colon)
}

func TestComposeOverflowDrawsMarker(t *testing.T) {
	l := layout.DefaultClock
	l.DigitWidth = 30
	f := render.NewFrame()

	Compose(f, l, Derive(21, 45, 31))

	assert.Equal(t, []image.Rectangle{image.Rect(0, 0, 3, 3)}, f.Boxes())
	assert.Len(t, f.Frames(), 3)
	require.Len(t, f.Texts(), 1)
	assert.Equal(t, "PM", f.Texts()[0].Text)
}

func TestClockScreenFollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 11, 59, 50, 0, time.Local))
	s := NewClockScreen(clock)

	f := render.NewFrame()
	s.Draw(f)
	require.Len(t, f.Texts(), 1)
	assert.Equal(t, "AM", f.Texts()[0].Text)
	assert.Len(t, f.Frames(), 5)

	clock.Advance(10 * time.Second)
	f.Reset()
	s.Draw(f)
	require.Len(t, f.Texts(), 1)
	assert.Equal(t, "PM", f.Texts()[0].Text)
	assert.Empty(t, f.Frames())
}
