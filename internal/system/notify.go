package system

import (
	"errors"
	"fmt"
)

// Sequence is a notification command understood by a Notifier.
type Sequence int

const (
	// BacklightEnforceOn keeps the display lit regardless of idle policy.
	BacklightEnforceOn Sequence = iota
	// BacklightEnforceAuto hands the backlight back to the idle policy.
	BacklightEnforceAuto
	// ResetDisplay clears any display override taken by the app.
	ResetDisplay
)

func (s Sequence) String() string {
	switch s {
	case BacklightEnforceOn:
		return "backlight_enforce_on"
	case BacklightEnforceAuto:
		return "backlight_enforce_auto"
	case ResetDisplay:
		return "reset_display"
	default:
		return fmt.Sprintf("sequence(%d)", int(s))
	}
}

var (
	ErrUnknownSequence = errors.New("unknown notification sequence")
	ErrNotOpen         = errors.New("notifier not open")
)

// Notifier is the host notification subsystem. Open acquires it, Close
// releases it; Message is only valid in between.
type Notifier interface {
	Open() error
	Message(seq Sequence) error
	Close() error
}

type NoopNotifier struct{}

func (NoopNotifier) Open() error                { return nil }
func (NoopNotifier) Message(seq Sequence) error { return nil }
func (NoopNotifier) Close() error               { return nil }

// LogNotifier only logs the sequences it receives.
type LogNotifier struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func (n LogNotifier) Open() error {
	n.log("notification record opened")
	return nil
}

func (n LogNotifier) Message(seq Sequence) error {
	n.log("message " + seq.String())
	return nil
}

func (n LogNotifier) Close() error {
	n.log("notification record closed")
	return nil
}

func (n LogNotifier) log(msg string) {
	if n.Logger != nil {
		n.Logger.Infof("notify", "%s", msg)
	}
}
