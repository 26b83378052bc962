//go:build linux && !tinygo

package buttons

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sys/unix"
)

type evdevLogger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// EvdevSource reads key events from Linux evdev devices matching Glob.
type EvdevSource struct {
	Glob    string
	Clock   clockwork.Clock
	Tracker TrackerConfig
	Logger  evdevLogger

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	tracker *Tracker
}

func NewEvdevSource(glob string) *EvdevSource {
	if glob == "" {
		glob = "/dev/input/event*"
	}
	return &EvdevSource{Glob: glob}
}

// Start opens every matching device and forwards its keys to emit.
// It is best-effort: with no readable devices it logs and returns nil.
func (s *EvdevSource) Start(ctx context.Context, emit func(Event)) error {
	// input_event = timeval + u16 type + u16 code + s32 value.
	tvSize := int(binary.Size(unix.Timeval{}))

	paths, err := filepath.Glob(s.Glob)
	if err != nil || len(paths) == 0 {
		if s.Logger != nil {
			s.Logger.Infof("input", "no evdev devices match %s", s.Glob)
		}
		return nil
	}

	readCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.tracker = NewTracker(s.Clock, s.Tracker, emit)

	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Errorf("input", "open %s: %v", path, err)
			}
			continue
		}
		if s.Logger != nil {
			s.Logger.Infof("input", "reading keys from %s", path)
		}
		s.wg.Add(1)
		go s.read(readCtx, os.NewFile(uintptr(fd), path), fd, tvSize)
	}
	return nil
}

func (s *EvdevSource) read(ctx context.Context, f *os.File, fd int, tvSize int) {
	defer s.wg.Done()
	defer func() { _ = f.Close() }()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		for _, raw := range parseKeyEvents(buf[:n], tvSize) {
			raw.apply(s.tracker)
		}
	}
}

func (s *EvdevSource) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	if s.tracker != nil {
		s.tracker.Reset()
	}
	return nil
}
