package buttons

import (
	"context"
	"fmt"
)

// Key identifies one of the device's six buttons.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyRight
	KeyLeft
	KeyOk
	KeyBack
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyOk:
		return "ok"
	case KeyBack:
		return "back"
	default:
		return fmt.Sprintf("key(%d)", int(k))
	}
}

// Type is the press type of an event. A short press is reported as
// Press, Short, Release; a held key as Press, Long, Repeat..., Release.
type Type int

const (
	TypePress Type = iota
	TypeRelease
	TypeShort
	TypeLong
	TypeRepeat
)

func (t Type) String() string {
	switch t {
	case TypePress:
		return "press"
	case TypeRelease:
		return "release"
	case TypeShort:
		return "short"
	case TypeLong:
		return "long"
	case TypeRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

type Event struct {
	Key  Key
	Type Type
	// Sequence is shared by every event of one physical press.
	Sequence uint32
}

func (e Event) String() string { return e.Key.String() + "/" + e.Type.String() }

// Source delivers key events from a host input device to emit until Stop.
// emit may block; sources must tolerate that.
type Source interface {
	Start(ctx context.Context, emit func(Event)) error
	Stop() error
}

type NoopSource struct{}

func (NoopSource) Start(ctx context.Context, emit func(Event)) error { return nil }
func (NoopSource) Stop() error                                       { return nil }
