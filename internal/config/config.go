// Package config holds the device binary's settings. Values come from flags,
// then BIGCLOCK_* environment variables, then an optional config file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/peterbourgon/ff/v3"
)

const (
	EnvPrefix = "BIGCLOCK"

	DefaultFramebuffer  = "/dev/fb0"
	DefaultInputGlob    = "/dev/input/event*"
	DefaultBlankMinutes = 10
	DefaultLogFile      = "./bigclock-debug.log"
	DefaultLongPress    = 300 * time.Millisecond
	DefaultRepeat       = 150 * time.Millisecond
)

type Config struct {
	Framebuffer string
	InputGlob   string
	// Backlight is a sysfs backlight directory; empty picks the first one.
	Backlight       string
	BlankMinutes    int
	BacklightScript string
	LongPress       time.Duration
	Repeat          time.Duration
	Debug           bool
	LogFile         string
	StdioLog        string
}

func Default() Config {
	return Config{
		Framebuffer:  DefaultFramebuffer,
		InputGlob:    DefaultInputGlob,
		BlankMinutes: DefaultBlankMinutes,
		LongPress:    DefaultLongPress,
		Repeat:       DefaultRepeat,
		LogFile:      DefaultLogFile,
	}
}

// Register binds cfg's fields to fs using cfg's current values as defaults.
func (cfg *Config) Register(fs *flag.FlagSet) {
	fs.StringVar(&cfg.Framebuffer, "fb", cfg.Framebuffer, "framebuffer device")
	fs.StringVar(&cfg.InputGlob, "input", cfg.InputGlob, "glob of evdev input devices")
	fs.StringVar(&cfg.Backlight, "backlight", cfg.Backlight, "sysfs backlight directory (default: first under /sys/class/backlight)")
	fs.IntVar(&cfg.BlankMinutes, "blank-minutes", cfg.BlankMinutes, "console blank timeout restored on exit, in minutes")
	fs.StringVar(&cfg.BacklightScript, "backlight-script", cfg.BacklightScript, "optional hook run with on|auto|reset")
	fs.DurationVar(&cfg.LongPress, "long-press", cfg.LongPress, "hold time before a press becomes long")
	fs.DurationVar(&cfg.Repeat, "repeat", cfg.Repeat, "repeat period while a key stays held")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to -log-file")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "debug log path")
	fs.StringVar(&cfg.StdioLog, "stdio-log", cfg.StdioLog, "redirect stdout+stderr (including panics) to this file")
}

// Parse reads args and the environment into a Config.
func Parse(name string, args []string) (Config, error) {
	cfg := Default()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cfg.Register(fs)
	_ = fs.String("config", "", "config file, one 'flag value' per line")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix(EnvPrefix),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	var errs []error
	if cfg.Framebuffer == "" {
		errs = append(errs, errors.New("fb must not be empty"))
	}
	if cfg.BlankMinutes < 0 {
		errs = append(errs, fmt.Errorf("blank-minutes must be >= 0 (got %d)", cfg.BlankMinutes))
	}
	if cfg.LongPress <= 0 {
		errs = append(errs, fmt.Errorf("long-press must be positive (got %s)", cfg.LongPress))
	}
	if cfg.Repeat <= 0 {
		errs = append(errs, fmt.Errorf("repeat must be positive (got %s)", cfg.Repeat))
	}
	return errors.Join(errs...)
}
