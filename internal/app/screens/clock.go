package screens

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/rook-computer/bigclock/internal/render"
	"github.com/rook-computer/bigclock/internal/render/layout"
	"github.com/rook-computer/bigclock/internal/render/segment"
)

// MarkerSize is the side of the square drawn instead of the digits when the
// layout does not fit.
const MarkerSize = 3

// ClockScreen draws the full-screen twelve hour clock. It keeps no time of
// its own; every Draw reads Clock again.
type ClockScreen struct {
	Clock  clockwork.Clock
	Layout layout.Clock
}

func NewClockScreen(clock clockwork.Clock) *ClockScreen {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ClockScreen{Clock: clock, Layout: layout.DefaultClock}
}

func (s *ClockScreen) Start(ctx context.Context) error { return nil }
func (s *ClockScreen) Stop() error                     { return nil }

func (s *ClockScreen) Draw(d render.Drawer) {
	now := s.Clock.Now()
	Compose(d, s.Layout, Derive(now.Hour(), now.Minute(), now.Second()))
}

// Compose draws one frame of f using layout l.
func Compose(d render.Drawer, l layout.Clock, f Fields) {
	face := l.Compute()

	if face.Fits() {
		digits := [4]segment.Digit{f.HourTens, f.HourOnes, f.MinuteTens, f.MinuteOnes}
		for i, cell := range face.Digits {
			if i == 2 {
				segment.DrawColon(d, face.Colon.Min.X, face.Colon.Min.Y, l.ColonWidth)
			}
			segment.Draw(d, cell.Min.X, cell.Min.Y, cell.Dx(), cell.Dy(), l.Stroke, digits[i])
		}
	} else {
		d.DrawBox(0, 0, MarkerSize, MarkerSize)
	}

	// Seconds progress: one outlined box per elapsed ten seconds.
	count := f.SecondsBucket
	if count > l.Steps {
		count = l.Steps
	}
	for i := 0; i < count; i++ {
		bar := l.Bar(face, i)
		d.DrawFrame(bar.Min.X, bar.Min.Y, bar.Dx(), bar.Dy())
	}

	// Two fixed label slots; only the active one is lit.
	x, y0 := l.LabelOrigin(face)
	if f.AM() {
		d.DrawText(x, y0+l.AMBaseline, "AM", render.FontCompact)
	}
	if f.PM {
		d.DrawText(x, y0+l.PMBaseline, "PM", render.FontCompact)
	}
}
