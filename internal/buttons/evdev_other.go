//go:build !linux && !tinygo

package buttons

import (
	"context"

	"github.com/jonboulle/clockwork"
)

type evdevLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// EvdevSource has no devices to read off Linux.
type EvdevSource struct {
	Glob    string
	Clock   clockwork.Clock
	Tracker TrackerConfig
	Logger  evdevLogger
}

func NewEvdevSource(glob string) *EvdevSource { return &EvdevSource{Glob: glob} }

func (s *EvdevSource) Start(ctx context.Context, emit func(Event)) error {
	if s.Logger != nil {
		s.Logger.Infof("input", "evdev input is only available on linux")
	}
	return nil
}

func (s *EvdevSource) Stop() error { return nil }
