//go:build tinygo && rp2040

package main

import (
	"context"
	"machine"

	"github.com/jonboulle/clockwork"
	"github.com/rook-computer/bigclock/internal/app"
	"github.com/rook-computer/bigclock/internal/buttons"
	"github.com/rook-computer/bigclock/internal/render"
	"github.com/rook-computer/bigclock/internal/system"
)

// Button wiring on the reference board; every pin pulls up and reads low
// while pressed.
var pins = map[buttons.Key]machine.Pin{
	buttons.KeyUp:    machine.GP10,
	buttons.KeyDown:  machine.GP11,
	buttons.KeyLeft:  machine.GP12,
	buttons.KeyRight: machine.GP13,
	buttons.KeyOk:    machine.GP14,
	buttons.KeyBack:  machine.GP15,
}

func main() {
	clock := clockwork.NewRealClock()

	input := buttons.NewPinSource(pins)
	input.Clock = clock
	viewport := render.NewViewPort(render.NewOLEDPanel(machine.I2C0, 0x3C), input)

	a := app.New(clock, viewport, system.NoopNotifier{})
	if err := a.Run(context.Background()); err != nil {
		println("bigclock:", err.Error())
	}
	// Nothing to return to on a microcontroller; leave the panel blank.
	select {}
}
