package buttons

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	DefaultLongPress    = 300 * time.Millisecond
	DefaultRepeatPeriod = 150 * time.Millisecond
)

type TrackerConfig struct {
	// LongPress is how long a key must be held before Long is reported.
	LongPress time.Duration
	// RepeatPeriod spaces Repeat events while the key stays held.
	RepeatPeriod time.Duration
}

func (c TrackerConfig) withDefaults() TrackerConfig {
	if c.LongPress <= 0 {
		c.LongPress = DefaultLongPress
	}
	if c.RepeatPeriod <= 0 {
		c.RepeatPeriod = DefaultRepeatPeriod
	}
	return c
}

// Tracker turns raw key down/up transitions into typed events.
type Tracker struct {
	clock clockwork.Clock
	cfg   TrackerConfig
	emit  func(Event)

	mu   sync.Mutex
	seq  uint32
	held map[Key]*keyState
}

type keyState struct {
	seq   uint32
	long  bool
	timer clockwork.Timer
}

func NewTracker(clock clockwork.Clock, cfg TrackerConfig, emit func(Event)) *Tracker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Tracker{clock: clock, cfg: cfg.withDefaults(), emit: emit, held: make(map[Key]*keyState)}
}

// Press records key k going down. A press of a key already held is ignored.
func (t *Tracker) Press(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.held[k]; ok {
		return
	}
	t.seq++
	st := &keyState{seq: t.seq}
	t.held[k] = st
	seq := st.seq
	st.timer = t.clock.AfterFunc(t.cfg.LongPress, func() { t.fire(k, seq) })
	t.emit(Event{Key: k, Type: TypePress, Sequence: seq})
}

func (t *Tracker) fire(k Key, seq uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.held[k]
	if !ok || st.seq != seq {
		return
	}
	typ := TypeRepeat
	if !st.long {
		st.long = true
		typ = TypeLong
	}
	st.timer = t.clock.AfterFunc(t.cfg.RepeatPeriod, func() { t.fire(k, seq) })
	t.emit(Event{Key: k, Type: typ, Sequence: seq})
}

// Release records key k going up. A release without a press is ignored.
func (t *Tracker) Release(k Key) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.held[k]
	if !ok {
		return
	}
	delete(t.held, k)
	if st.timer != nil {
		st.timer.Stop()
	}
	if !st.long {
		t.emit(Event{Key: k, Type: TypeShort, Sequence: st.seq})
	}
	t.emit(Event{Key: k, Type: TypeRelease, Sequence: st.seq})
}

// Tap reports a press immediately followed by a release, for hosts that
// only see completed key strokes.
func (t *Tracker) Tap(k Key) {
	t.Press(k)
	t.Release(k)
}

// Reset forgets held keys without emitting anything.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, st := range t.held {
		if st.timer != nil {
			st.timer.Stop()
		}
		delete(t.held, k)
	}
}
