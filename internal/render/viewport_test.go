package render

import (
	"context"
	"errors"
	"image"
	"sync"
	"testing"
	"time"

	"github.com/rook-computer/bigclock/internal/buttons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

type boxScreen struct {
	mu    sync.Mutex
	draws int
}

func (s *boxScreen) Start(ctx context.Context) error { return nil }
func (s *boxScreen) Stop() error                     { return nil }
func (s *boxScreen) Draw(d Drawer) {
	s.mu.Lock()
	s.draws++
	s.mu.Unlock()
	d.DrawBox(0, 0, 3, 3)
}

type fakeSource struct {
	mu      sync.Mutex
	emit    func(buttons.Event)
	started int
	stopped int
	err     error
}

func (s *fakeSource) Start(ctx context.Context, emit func(buttons.Event)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.emit = emit
	s.started++
	return nil
}

func (s *fakeSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped++
	return nil
}

func waitPresented(t *testing.T, p *MemoryPanel) {
	t.Helper()
	select {
	case <-p.Presented():
	case <-time.After(testTimeout):
		t.Fatal("timed out waiting for a frame")
	}
}

func TestViewPortFirstFrame(t *testing.T) {
	panel := NewMemoryPanel()
	vp := NewViewPort(panel, &fakeSource{})
	vp.SetScreen(&boxScreen{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, vp.Start(ctx))
	go vp.RunLoop(ctx)

	waitPresented(t, panel)
	img := panel.Last()
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 128, 64), img.Bounds())
	assert.Equal(t, Foreground, img.At(1, 1))
	assert.Equal(t, Background, img.At(10, 10))

	require.NoError(t, vp.Stop())
	opened, closed := panel.State()
	assert.True(t, opened)
	assert.True(t, closed)
}

func TestViewPortUpdateCoalesces(t *testing.T) {
	panel := NewMemoryPanel()
	screen := &boxScreen{}
	vp := NewViewPort(panel, nil)
	vp.SetScreen(screen)
	require.NoError(t, vp.Start(context.Background()))

	// Start already marked dirty; more marks before the loop runs collapse.
	for i := 0; i < 10; i++ {
		vp.Update()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go vp.RunLoop(ctx)
	waitPresented(t, panel)

	select {
	case <-panel.Presented():
		t.Fatal("coalesced marks produced a second frame")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Equal(t, 1, panel.Count())
	assert.Equal(t, uint64(1), vp.Frames())
}

func TestViewPortForwardsInput(t *testing.T) {
	src := &fakeSource{}
	vp := NewViewPort(NewMemoryPanel(), src)

	var got []buttons.Event
	vp.SetInputCallback(func(ev buttons.Event) { got = append(got, ev) })
	require.NoError(t, vp.Start(context.Background()))

	src.emit(buttons.Event{Key: buttons.KeyBack, Type: buttons.TypeShort})
	assert.Equal(t, []buttons.Event{{Key: buttons.KeyBack, Type: buttons.TypeShort}}, got)

	require.NoError(t, vp.Stop())
	assert.Equal(t, 1, src.stopped)
	// A second Stop is a no-op.
	require.NoError(t, vp.Stop())
	assert.Equal(t, 1, src.stopped)
}

func TestViewPortStartErrors(t *testing.T) {
	panel := NewMemoryPanel()
	panel.OpenErr = errors.New("no display")
	vp := NewViewPort(panel, nil)
	assert.ErrorContains(t, vp.Start(context.Background()), "no display")

	panel = NewMemoryPanel()
	vp = NewViewPort(panel, &fakeSource{err: errors.New("no keys")})
	assert.ErrorContains(t, vp.Start(context.Background()), "no keys")
	_, closed := panel.State()
	assert.True(t, closed, "panel released when input fails")

	assert.Error(t, (&ViewPort{}).Start(context.Background()))
}

func TestViewPortRedrawWithoutScreen(t *testing.T) {
	panel := NewMemoryPanel()
	vp := NewViewPort(panel, nil)
	require.NoError(t, vp.Start(context.Background()))

	vp.Redraw()
	assert.Zero(t, panel.Count())
}

func TestViewPortRunLoopStopsOnCancel(t *testing.T) {
	vp := NewViewPort(NewMemoryPanel(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		vp.RunLoop(ctx)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(testTimeout):
		t.Fatal("RunLoop did not return")
	}
}
