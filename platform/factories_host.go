//go:build !tinygo

package platform

import (
	"image/color"
	"sync"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin for host-side tests.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	writes  int
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.writes++
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.writes++
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Number() int { return p.number }

// IsOutput reports whether ConfigureOutput has been called.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

// Writes counts level changes requested through ConfigureOutput and Set.
func (p *FakePin) Writes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writes
}

// HostPinFactory returns stable *FakePin instances per number.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

func (f *HostPinFactory) ByNumber(n int) (GPIOPin, bool) {
	if n < 0 || n > MaxGPIO {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests.
func (f *HostPinFactory) Get(n int) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() PinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}

// ----------------------------- LED strip (host) ------------------------------

// FakeStrip records the last frame written.
type FakeStrip struct {
	mu     sync.Mutex
	Pin    int
	frames int
	last   []color.RGBA
}

func (s *FakeStrip) WriteColors(buf []color.RGBA) error {
	s.mu.Lock()
	s.last = append(s.last[:0], buf...)
	s.frames++
	s.mu.Unlock()
	return nil
}

// Last returns a copy of the last frame and the number of frames written.
func (s *FakeStrip) Last() ([]color.RGBA, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]color.RGBA(nil), s.last...), s.frames
}

// NewStrip returns a FakeStrip bound to the given data pin.
func NewStrip(pin GPIOPin) Strip { return &FakeStrip{Pin: pin.Number()} }
