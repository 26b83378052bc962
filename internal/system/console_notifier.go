//go:build !tinygo

package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	DefaultBacklightRoot = "/sys/class/backlight"
	DefaultBlankMinutes  = 10
	hookTimeout          = 5 * time.Second
)

// ConsoleNotifier drives the Linux console: the sysfs backlight, VT blanking
// and the KD mode. An optional hook script receives "on", "auto" or "reset"
// for site specific handling.
type ConsoleNotifier struct {
	// BacklightDir is a sysfs backlight directory. Empty selects the first
	// entry under DefaultBacklightRoot; none found skips the backlight.
	BacklightDir string
	BlankMinutes int
	Script       string
	Runner       Runner
	Logger       logger

	vt         func(string) error
	textMode   func() error
	showCursor func() error

	mu    sync.Mutex
	open  bool
	dir   string
	saved *backlightState
}

type backlightState struct {
	brightness string
	power      string
}

func NewConsoleNotifier(backlightDir string) *ConsoleNotifier {
	return &ConsoleNotifier{
		BacklightDir: backlightDir,
		BlankMinutes: DefaultBlankMinutes,
		Runner:       ShellRunner{},
	}
}

func (n *ConsoleNotifier) Open() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.open {
		return nil
	}
	n.dir = n.BacklightDir
	if n.dir == "" {
		matches, _ := filepath.Glob(filepath.Join(DefaultBacklightRoot, "*"))
		if len(matches) > 0 {
			n.dir = matches[0]
		}
	}
	n.open = true
	n.infof("opened (backlight=%q)", n.dir)
	return nil
}

func (n *ConsoleNotifier) Message(seq Sequence) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.open {
		return ErrNotOpen
	}
	var err error
	switch seq {
	case BacklightEnforceOn:
		err = errors.Join(n.enforceOn(), n.hook("on"))
	case BacklightEnforceAuto:
		err = errors.Join(n.enforceAuto(), n.hook("auto"))
	case ResetDisplay:
		err = errors.Join(
			logResult(n.Logger, n.call(n.textMode, RestoreTextMode), "KD_TEXT set", "KD_TEXT failed"),
			logResult(n.Logger, n.call(n.showCursor, ShowCursor), "cursor shown", "show cursor failed"),
			n.hook("reset"),
		)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownSequence, int(seq))
	}
	if err != nil {
		n.errorf("%s: %v", seq, err)
	} else {
		n.infof("%s", seq)
	}
	return err
}

func (n *ConsoleNotifier) Close() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.open = false
	return nil
}

func (n *ConsoleNotifier) enforceOn() error {
	var errs []error
	if n.dir != "" {
		if n.saved == nil {
			st := &backlightState{}
			var err error
			if st.brightness, err = readSysfs(n.dir, "brightness"); err != nil {
				errs = append(errs, err)
			} else {
				// bl_power is optional on some drivers.
				st.power, _ = readSysfs(n.dir, "bl_power")
				n.saved = st
			}
		}
		if n.saved != nil && n.saved.power != "" {
			errs = append(errs, writeSysfs(n.dir, "bl_power", "0"))
		}
		if maxB, err := readSysfs(n.dir, "max_brightness"); err != nil {
			errs = append(errs, err)
		} else {
			errs = append(errs, writeSysfs(n.dir, "brightness", maxB))
		}
	}
	errs = append(errs, n.writeVT(vtBlankTimeout(0)+vtUnblank))
	return errors.Join(errs...)
}

func (n *ConsoleNotifier) enforceAuto() error {
	var errs []error
	if n.dir != "" && n.saved != nil {
		errs = append(errs, writeSysfs(n.dir, "brightness", n.saved.brightness))
		if n.saved.power != "" {
			errs = append(errs, writeSysfs(n.dir, "bl_power", n.saved.power))
		}
		n.saved = nil
	}
	minutes := n.BlankMinutes
	if minutes <= 0 {
		minutes = DefaultBlankMinutes
	}
	errs = append(errs, n.writeVT(vtBlankTimeout(minutes)))
	return errors.Join(errs...)
}

func (n *ConsoleNotifier) hook(arg string) error {
	if n.Script == "" {
		return nil
	}
	r := n.Runner
	if r == nil {
		r = ShellRunner{}
	}
	ctx, cancel := context.WithTimeout(context.Background(), hookTimeout)
	defer cancel()
	_, stderr, err := r.Run(ctx, n.Script, arg)
	if err != nil {
		return fmt.Errorf("hook %s %s: %w (%s)", n.Script, arg, err, strings.TrimSpace(stderr))
	}
	return nil
}

func (n *ConsoleNotifier) writeVT(s string) error {
	if n.vt != nil {
		return n.vt(s)
	}
	return writeVT(s)
}

func (n *ConsoleNotifier) call(override, fallback func() error) error {
	if override != nil {
		return override()
	}
	return fallback()
}

func (n *ConsoleNotifier) infof(format string, args ...interface{}) {
	if n.Logger != nil {
		n.Logger.Infof("backlight", format, args...)
	}
}

func (n *ConsoleNotifier) errorf(format string, args ...interface{}) {
	if n.Logger != nil {
		n.Logger.Errorf("backlight", format, args...)
	}
}

func readSysfs(dir, name string) (string, error) {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimSpace(string(b)), nil
}

func writeSysfs(dir, name, value string) error {
	if err := os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
