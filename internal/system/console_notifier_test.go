//go:build !tinygo

package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	calls [][]string
	err   error
}

func (r *fakeRunner) Run(ctx context.Context, cmd string, args ...string) (string, string, error) {
	r.calls = append(r.calls, append([]string{cmd}, args...))
	if r.err != nil {
		return "", "boom", r.err
	}
	return "", "", nil
}

type fakeConsole struct {
	vt       []string
	textMode int
	cursor   int
}

func newTestNotifier(t *testing.T, dir string) (*ConsoleNotifier, *fakeConsole) {
	t.Helper()
	fc := &fakeConsole{}
	n := NewConsoleNotifier(dir)
	n.vt = func(s string) error { fc.vt = append(fc.vt, s); return nil }
	n.textMode = func() error { fc.textMode++; return nil }
	n.showCursor = func() error { fc.cursor++; return nil }
	return n, fc
}

func writeBacklight(t *testing.T, brightness, power, maxBrightness string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{"brightness": brightness, "max_brightness": maxBrightness}
	if power != "" {
		files["bl_power"] = power
	}
	for name, v := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(v+"\n"), 0o644))
	}
	return dir
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return strings.TrimSpace(string(b))
}

func TestConsoleNotifierEnforceOnThenAuto(t *testing.T) {
	dir := writeBacklight(t, "40", "1", "255")
	n, fc := newTestNotifier(t, dir)
	n.BlankMinutes = 7

	require.NoError(t, n.Open())
	require.NoError(t, n.Message(BacklightEnforceOn))
	assert.Equal(t, "255", readFile(t, dir, "brightness"))
	assert.Equal(t, "0", readFile(t, dir, "bl_power"))
	assert.Equal(t, []string{"\x1b[9;0]\x1b[13]"}, fc.vt)

	require.NoError(t, n.Message(BacklightEnforceAuto))
	assert.Equal(t, "40", readFile(t, dir, "brightness"))
	assert.Equal(t, "1", readFile(t, dir, "bl_power"))
	assert.Equal(t, "\x1b[9;7]", fc.vt[1])

	require.NoError(t, n.Close())
}

func TestConsoleNotifierWithoutBlPower(t *testing.T) {
	dir := writeBacklight(t, "3", "", "7")
	n, _ := newTestNotifier(t, dir)

	require.NoError(t, n.Open())
	require.NoError(t, n.Message(BacklightEnforceOn))
	assert.Equal(t, "7", readFile(t, dir, "brightness"))
	assert.NoFileExists(t, filepath.Join(dir, "bl_power"))

	require.NoError(t, n.Message(BacklightEnforceAuto))
	assert.Equal(t, "3", readFile(t, dir, "brightness"))
}

func TestConsoleNotifierEnforceOnTwiceKeepsOriginal(t *testing.T) {
	dir := writeBacklight(t, "12", "0", "100")
	n, _ := newTestNotifier(t, dir)
	require.NoError(t, n.Open())

	require.NoError(t, n.Message(BacklightEnforceOn))
	require.NoError(t, n.Message(BacklightEnforceOn))
	require.NoError(t, n.Message(BacklightEnforceAuto))
	assert.Equal(t, "12", readFile(t, dir, "brightness"))
}

func TestConsoleNotifierMissingBacklight(t *testing.T) {
	n, fc := newTestNotifier(t, filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, n.Open())

	err := n.Message(BacklightEnforceOn)
	assert.ErrorContains(t, err, "read brightness")
	// The VT half still runs.
	assert.Len(t, fc.vt, 1)

	require.NoError(t, n.Message(BacklightEnforceAuto))
	assert.Equal(t, "\x1b[9;10]", fc.vt[1])
}

func TestConsoleNotifierResetDisplay(t *testing.T) {
	n, fc := newTestNotifier(t, t.TempDir())
	require.NoError(t, n.Open())

	require.NoError(t, n.Message(ResetDisplay))
	assert.Equal(t, 1, fc.textMode)
	assert.Equal(t, 1, fc.cursor)
}

type recordingLogger struct{ lines []string }

func (l *recordingLogger) component(name string) []string {
	var out []string
	for _, line := range l.lines {
		if strings.Contains(line, " "+name+": ") {
			out = append(out, line)
		}
	}
	return out
}

func (l *recordingLogger) Infof(component, format string, args ...interface{}) {
	l.lines = append(l.lines, "INFO "+component+": "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(component, format string, args ...interface{}) {
	l.lines = append(l.lines, "ERROR "+component+": "+fmt.Sprintf(format, args...))
}

func TestConsoleNotifierResetDisplayLogs(t *testing.T) {
	n, _ := newTestNotifier(t, t.TempDir())
	logger := &recordingLogger{}
	n.Logger = logger
	require.NoError(t, n.Open())

	require.NoError(t, n.Message(ResetDisplay))
	assert.Equal(t, []string{"INFO tty: KD_TEXT set", "INFO tty: cursor shown"}, logger.component("tty"))

	logger.lines = nil
	n.textMode = func() error { return errors.New("inappropriate ioctl") }
	err := n.Message(ResetDisplay)
	assert.ErrorContains(t, err, "inappropriate ioctl")
	assert.Equal(t, []string{"ERROR tty: KD_TEXT failed: inappropriate ioctl", "INFO tty: cursor shown"}, logger.component("tty"))
	assert.Contains(t, logger.lines, "ERROR backlight: reset_display: inappropriate ioctl")
}

func TestConsoleNotifierHook(t *testing.T) {
	runner := &fakeRunner{}
	n, _ := newTestNotifier(t, writeBacklight(t, "1", "0", "2"))
	n.Script = "/usr/local/bin/bl-hook"
	n.Runner = runner
	require.NoError(t, n.Open())

	for _, seq := range []Sequence{BacklightEnforceOn, BacklightEnforceAuto, ResetDisplay} {
		require.NoError(t, n.Message(seq))
	}
	assert.Equal(t, [][]string{
		{"/usr/local/bin/bl-hook", "on"},
		{"/usr/local/bin/bl-hook", "auto"},
		{"/usr/local/bin/bl-hook", "reset"},
	}, runner.calls)

	runner.err = errors.New("exit 3")
	err := n.Message(ResetDisplay)
	assert.ErrorContains(t, err, "hook /usr/local/bin/bl-hook reset")
	assert.ErrorContains(t, err, "boom")
}

func TestConsoleNotifierRequiresOpen(t *testing.T) {
	n, _ := newTestNotifier(t, t.TempDir())
	assert.ErrorIs(t, n.Message(BacklightEnforceOn), ErrNotOpen)

	require.NoError(t, n.Open())
	assert.ErrorIs(t, n.Message(Sequence(42)), ErrUnknownSequence)
	require.NoError(t, n.Close())
	assert.ErrorIs(t, n.Message(ResetDisplay), ErrNotOpen)
}

func TestSequenceString(t *testing.T) {
	assert.Equal(t, "backlight_enforce_on", BacklightEnforceOn.String())
	assert.Equal(t, "backlight_enforce_auto", BacklightEnforceAuto.String())
	assert.Equal(t, "reset_display", ResetDisplay.String())
	assert.Equal(t, "sequence(9)", Sequence(9).String())
}

func TestNoopAndLogNotifier(t *testing.T) {
	for _, n := range []Notifier{NoopNotifier{}, LogNotifier{}} {
		require.NoError(t, n.Open())
		require.NoError(t, n.Message(BacklightEnforceOn))
		require.NoError(t, n.Close())
	}
}

func TestVTBlankTimeout(t *testing.T) {
	assert.Equal(t, "\x1b[9;0]", vtBlankTimeout(0))
	assert.Equal(t, "\x1b[9;10]", vtBlankTimeout(10))
}
