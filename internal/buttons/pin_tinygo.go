//go:build tinygo

package buttons

import (
	"context"
	"machine"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// PinSource polls active-low GPIO buttons with internal pull-ups.
type PinSource struct {
	Pins    map[Key]machine.Pin
	Poll    time.Duration
	Clock   clockwork.Clock
	Tracker TrackerConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPinSource(pins map[Key]machine.Pin) *PinSource {
	return &PinSource{Pins: pins, Poll: 10 * time.Millisecond}
}

func (s *PinSource) Start(ctx context.Context, emit func(Event)) error {
	for _, pin := range s.Pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	tracker := NewTracker(s.Clock, s.Tracker, emit)
	pollCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		down := make(map[Key]bool, len(s.Pins))
		for {
			select {
			case <-pollCtx.Done():
				tracker.Reset()
				return
			default:
			}
			for key, pin := range s.Pins {
				pressed := !pin.Get()
				if pressed == down[key] {
					continue
				}
				down[key] = pressed
				if pressed {
					tracker.Press(key)
				} else {
					tracker.Release(key)
				}
			}
			time.Sleep(s.Poll)
		}
	}()
	return nil
}

func (s *PinSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	return nil
}
