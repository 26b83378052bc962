//go:build !tinygo

package buttons

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
)

// TermSource reads keys from a tcell screen. Terminals only report completed
// key strokes, so every stroke becomes a short press.
type TermSource struct {
	Screen tcell.Screen
	Clock  clockwork.Clock

	stopped atomic.Bool
	wg      sync.WaitGroup
}

func NewTermSource(screen tcell.Screen) *TermSource { return &TermSource{Screen: screen} }

func (s *TermSource) Start(ctx context.Context, emit func(Event)) error {
	if s.Screen == nil {
		return errors.New("term source has no screen")
	}
	s.stopped.Store(false)
	tracker := NewTracker(s.Clock, TrackerConfig{}, emit)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			ev := s.Screen.PollEvent()
			if ev == nil || s.stopped.Load() {
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				if k, ok := termKey(key); ok {
					tracker.Tap(k)
				}
			}
		}
	}()
	return nil
}

func (s *TermSource) Stop() error {
	if s.stopped.Swap(true) {
		return nil
	}
	// Wake PollEvent so the reader notices the stop.
	_ = s.Screen.PostEvent(tcell.NewEventInterrupt(nil))
	s.wg.Wait()
	return nil
}

func termKey(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyCtrlC:
		return KeyBack, true
	case tcell.KeyEnter:
		return KeyOk, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyLeft:
		return KeyLeft, true
	case tcell.KeyRight:
		return KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return KeyUp, true
		case 's', 'j':
			return KeyDown, true
		case 'a', 'h':
			return KeyLeft, true
		case 'd', 'l':
			return KeyRight, true
		case ' ':
			return KeyOk, true
		}
	}
	return 0, false
}
