package render

import (
	"image"
	"image/draw"
	"sync"
)

// MemoryPanel is a test Panel that keeps a copy of the last presented
// image instead of showing it.
type MemoryPanel struct {
	mu      sync.Mutex
	last    *image.RGBA
	count   int
	opened  bool
	closed  bool
	presCh  chan struct{}
	OpenErr error
}

func NewMemoryPanel() *MemoryPanel { return &MemoryPanel{presCh: make(chan struct{}, 64)} }

func (p *MemoryPanel) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.OpenErr != nil {
		return p.OpenErr
	}
	p.opened = true
	return nil
}

func (p *MemoryPanel) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	return nil
}

func (p *MemoryPanel) Present(img image.Image) error {
	p.mu.Lock()
	b := img.Bounds()
	if p.last == nil || p.last.Bounds() != b {
		p.last = image.NewRGBA(b)
	}
	draw.Draw(p.last, b, img, b.Min, draw.Src)
	p.count++
	p.mu.Unlock()
	select {
	case p.presCh <- struct{}{}:
	default:
	}
	return nil
}

// Presented is signalled after every Present.
func (p *MemoryPanel) Presented() <-chan struct{} { return p.presCh }

func (p *MemoryPanel) Last() image.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.last == nil {
		return nil
	}
	out := image.NewRGBA(p.last.Bounds())
	copy(out.Pix, p.last.Pix)
	return out
}

func (p *MemoryPanel) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

func (p *MemoryPanel) State() (opened, closed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opened, p.closed
}
