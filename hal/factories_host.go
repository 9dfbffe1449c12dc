// hal/factories_host.go
//go:build !rp2040 && !rp2350

package hal

import (
	"errors"
	"io"
	"os"
	"sync"

	"tinygo.org/x/drivers"

	"audiomenu-go/errcode"
)

// ----------------------------- Console / display -----------------------------

// Console is stderr on host builds.
func Console() io.Writer { return os.Stderr }

var errNACK = errors.New("i2c: no ack")

// hostI2C has nothing attached; every transfer NACKs.
type hostI2C struct{}

func (hostI2C) Tx(addr uint16, w, r []byte) error { return errNACK }

// DisplayBus returns an empty host I2C bus.
func DisplayBus() drivers.I2C { return hostI2C{} }

// OpenDisplay never finds a panel on host builds. The simulator draws into
// an in-memory framebuffer instead.
func OpenDisplay(bus drivers.I2C, b Board) (drivers.Displayer, error) {
	if err := probe(bus, b.DisplayAddr); err != nil {
		return nil, err
	}
	return nil, &errcode.E{C: errcode.DisplayNotFound, Op: "hal.display", Msg: "no panel driver on host"}
}

// OpenFlash opens the file-backed flash named by AUDIOMENU_FLASH_PATH
// (default "audiomenu.flash").
func OpenFlash() (BlockDevice, error) {
	path := os.Getenv("AUDIOMENU_FLASH_PATH")
	if path == "" {
		path = "audiomenu.flash"
	}
	f, err := OpenFileFlash(path, hostFlashDefaultSize)
	if err != nil {
		return nil, errcode.Wrap(errcode.StorageUnavailable, "hal.flash", err)
	}
	return f, nil
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements GPIOPin and IRQPin for host-side tests and the simulator.
type FakePin struct {
	mu      sync.RWMutex
	number  int
	level   bool
	modeOut bool
	pull    Pull
	irqEdge Edge
	irqFunc func()
}

// NewFakePin returns a pin at the given initial level.
func NewFakePin(n int, level bool) *FakePin { return &FakePin{number: n, level: level} }

func (p *FakePin) ConfigureInput(pull Pull) error {
	p.mu.Lock()
	p.modeOut = false
	p.pull = pull
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

// Set changes the level and runs the IRQ handler synchronously when the
// change matches the configured edge, as the hardware would.
func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	old := p.level
	p.level = level
	irq := p.irqFunc
	want := irqWanted(p.irqEdge, edgeFrom(old, level))
	p.mu.Unlock()
	if want && irq != nil {
		irq()
	}
}

// Preset changes the level without raising an interrupt. Used to move
// several pins "at once" before a single Strobe.
func (p *FakePin) Preset(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// Strobe runs the IRQ handler unconditionally.
func (p *FakePin) Strobe() {
	p.mu.RLock()
	irq := p.irqFunc
	p.mu.RUnlock()
	if irq != nil {
		irq()
	}
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

func (p *FakePin) Toggle() { p.Set(!p.Get()) }

func (p *FakePin) Number() int { return p.number }

// IsOutput reports whether the pin was last configured as an output.
func (p *FakePin) IsOutput() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.modeOut
}

func (p *FakePin) SetIRQ(edge Edge, handler func()) error {
	p.mu.Lock()
	p.irqEdge = edge
	p.irqFunc = handler
	p.mu.Unlock()
	return nil
}

func (p *FakePin) ClearIRQ() error {
	p.mu.Lock()
	p.irqEdge = EdgeNone
	p.irqFunc = nil
	p.mu.Unlock()
	return nil
}

func edgeFrom(old, new bool) Edge {
	switch {
	case !old && new:
		return EdgeRising
	case old && !new:
		return EdgeFalling
	default:
		return EdgeNone
	}
}

func irqWanted(cfg, seen Edge) bool {
	switch cfg {
	case EdgeBoth:
		return seen == EdgeRising || seen == EdgeFalling
	default:
		return cfg != EdgeNone && cfg == seen
	}
}

// HostPinFactory returns stable *FakePin instances per number. New pins
// idle high, like inputs with pull-ups.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
}

// ByNumber accepts the same GPIO range as the board.
func (f *HostPinFactory) ByNumber(n int) (GPIOPin, bool) {
	if !ValidGPIO(n) {
		return nil, false
	}
	return f.Pin(n), true
}

// Pin exposes the underlying *FakePin (e.g. to drive IRQ edges).
func (f *HostPinFactory) Pin(n int) *FakePin {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[int]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = NewFakePin(n, true)
		f.pins[n] = p
	}
	return p
}

// DefaultPinFactory provides a host GPIO factory.
func DefaultPinFactory() PinFactory {
	return &HostPinFactory{pins: make(map[int]*FakePin)}
}
