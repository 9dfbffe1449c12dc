// Package hal is the only contact point between the firmware and the board:
// GPIO pins with edge interrupts, the display bus, flash and the console.
// Platform factories are selected by build tags (rp2040/rp2350 vs host).
package hal

type Pull uint8

const (
	PullNone Pull = iota
	PullUp
	PullDown
)

// Level is the read side of a pin.
type Level interface {
	Get() bool
}

type GPIOPin interface {
	Level
	ConfigureInput(pull Pull) error
	ConfigureOutput(initial bool) error
	Set(level bool)
	Toggle()
	Number() int
}

// MaxGPIO is the highest user GPIO on RP2 boards (GP0..GP28).
const MaxGPIO = 28

// ValidGPIO reports whether n names a user GPIO.
func ValidGPIO(n int) bool { return n >= 0 && n <= MaxGPIO }

// Edge selection for IRQ.
type Edge uint8

const (
	EdgeNone Edge = iota
	EdgeRising
	EdgeFalling
	EdgeBoth
)

func (e Edge) String() string {
	switch e {
	case EdgeRising:
		return "rising"
	case EdgeFalling:
		return "falling"
	case EdgeBoth:
		return "both"
	default:
		return "none"
	}
}

// IRQPin extends GPIOPin with interrupts. Handlers run in interrupt context:
// no allocation, no blocking, no logging.
type IRQPin interface {
	GPIOPin
	SetIRQ(edge Edge, handler func()) error
	ClearIRQ() error
}

// PinFactory supplies GPIO pins by the board number scheme.
type PinFactory interface {
	ByNumber(n int) (GPIOPin, bool)
}

// BlockDevice is the flash contract used for persistence. It matches the
// TinyGo machine.Flash method set.
type BlockDevice interface {
	ReadAt(p []byte, off int64) (int, error)
	WriteAt(p []byte, off int64) (int, error)
	WriteBlockSize() int64
	EraseBlockSize() int64
	EraseBlocks(start, length int64) error
}
