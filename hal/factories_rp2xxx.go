// hal/factories_rp2xxx.go
//go:build rp2040 || rp2350

package hal

import (
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ssd1306"

	"audiomenu-go/errcode"
)

// -----------------------------------------------------------------------------
// Defaults used on Raspberry Pi Pico / Pico 2 (RP2 family)
// -----------------------------------------------------------------------------

// DefaultPinFactory maps logical numbers directly to machine.Pin(n). This
// matches Pico/Pico 2 GP numbering.
func DefaultPinFactory() PinFactory { return rp2PinFactory{} }

// Console configures uart0 (GP0/GP1, 115200 8N1) for log output.
func Console() io.Writer {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return u
}

// DisplayBus configures i2c0 @ 400 kHz on the board-default pins.
func DisplayBus() drivers.I2C {
	b := machine.I2C0
	_ = b.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	})
	return b
}

// OpenDisplay probes for an SSD1306 at b.DisplayAddr and configures it.
// A missing panel yields errcode.DisplayNotFound; callers run headless.
func OpenDisplay(bus drivers.I2C, b Board) (drivers.Displayer, error) {
	if err := probe(bus, b.DisplayAddr); err != nil {
		return nil, err
	}
	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Address:  b.DisplayAddr,
		Width:    b.DisplayWidth,
		Height:   b.DisplayHeight,
		VccState: ssd1306.SWITCHCAPVCC,
	})
	dev.ClearDisplay()
	return dev, nil
}

// OpenFlash returns the on-chip flash data region (after the firmware image).
func OpenFlash() (BlockDevice, error) {
	if machine.Flash.Size() <= 0 {
		return nil, &errcode.E{C: errcode.StorageUnavailable, Op: "hal.flash"}
	}
	return machine.Flash, nil
}

// ---- GPIO implementation (includes IRQ support) ----

type rp2PinFactory struct{}

func (rp2PinFactory) ByNumber(n int) (GPIOPin, bool) {
	if !ValidGPIO(n) {
		return nil, false
	}
	return &rp2Pin{p: machine.Pin(n), n: n}, true
}

type rp2Pin struct {
	p machine.Pin
	n int
}

func (r *rp2Pin) ConfigureInput(pull Pull) error {
	var mode machine.PinMode
	switch pull {
	case PullUp:
		mode = machine.PinInputPullup
	case PullDown:
		mode = machine.PinInputPulldown
	default:
		mode = machine.PinInput
	}
	r.p.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r *rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r *rp2Pin) Set(level bool) { r.p.Set(level) }
func (r *rp2Pin) Get() bool      { return r.p.Get() }
func (r *rp2Pin) Toggle()        { r.p.Set(!r.p.Get()) }
func (r *rp2Pin) Number() int    { return r.n }

// SetIRQ binds handler to the requested edges via machine.Pin.SetInterrupt.
func (r *rp2Pin) SetIRQ(edge Edge, handler func()) error {
	return r.p.SetInterrupt(toPinChange(edge), func(machine.Pin) { handler() })
}

func (r *rp2Pin) ClearIRQ() error {
	var zero machine.PinChange
	return r.p.SetInterrupt(zero, nil)
}

func toPinChange(e Edge) machine.PinChange {
	switch e {
	case EdgeRising:
		return machine.PinRising
	case EdgeFalling:
		return machine.PinFalling
	case EdgeBoth:
		return machine.PinToggle
	default:
		var zero machine.PinChange
		return zero
	}
}
