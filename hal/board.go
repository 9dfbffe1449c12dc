package hal

import (
	"tinygo.org/x/drivers"

	"audiomenu-go/errcode"
)

// Board maps logical signals to GPIO numbers.
type Board struct {
	EncoderA int
	EncoderB int
	Button   int
	LED      int

	// ButtonPressedLevel is the raw level read while the button is held
	// (false for a switch to ground with a pull-up).
	ButtonPressedLevel bool

	DisplayAddr   uint16
	DisplayWidth  int16
	DisplayHeight int16
}

// PicoDefault is the reference wiring on a Raspberry Pi Pico.
func PicoDefault() Board {
	return Board{
		EncoderA:           14,
		EncoderB:           15,
		Button:             13,
		LED:                25,
		ButtonPressedLevel: false,
		DisplayAddr:        0x3C,
		DisplayWidth:       128,
		DisplayHeight:      64,
	}
}

// Inputs are the pins the UI needs, already configured.
type Inputs struct {
	EncoderA IRQPin
	EncoderB IRQPin
	Button   GPIOPin
	LED      GPIOPin
}

// ClaimInputs configures the encoder and button as pulled-up inputs and the
// LED as an output. The encoder pins must support interrupts.
func ClaimInputs(f PinFactory, b Board) (Inputs, error) {
	var in Inputs
	a, err := irqPin(f, b.EncoderA)
	if err != nil {
		return in, err
	}
	bb, err := irqPin(f, b.EncoderB)
	if err != nil {
		return in, err
	}
	btn, ok := f.ByNumber(b.Button)
	if !ok {
		return in, &errcode.E{C: errcode.UnknownPin, Op: "hal.button"}
	}
	led, ok := f.ByNumber(b.LED)
	if !ok {
		return in, &errcode.E{C: errcode.UnknownPin, Op: "hal.led"}
	}
	_ = a.ConfigureInput(PullUp)
	_ = bb.ConfigureInput(PullUp)
	_ = btn.ConfigureInput(PullUp)
	_ = led.ConfigureOutput(false)
	return Inputs{EncoderA: a, EncoderB: bb, Button: btn, LED: led}, nil
}

func irqPin(f PinFactory, n int) (IRQPin, error) {
	p, ok := f.ByNumber(n)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "hal.encoder"}
	}
	ip, ok := p.(IRQPin)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "hal.encoder", Msg: "pin has no irq"}
	}
	return ip, nil
}

// BindEdges attaches handler to both edges of every pin. The returned func
// detaches them.
func BindEdges(handler func(), pins ...IRQPin) (func(), error) {
	for i, p := range pins {
		if err := p.SetIRQ(EdgeBoth, handler); err != nil {
			for _, q := range pins[:i] {
				_ = q.ClearIRQ()
			}
			return nil, err
		}
	}
	return func() {
		for _, p := range pins {
			_ = p.ClearIRQ()
		}
	}, nil
}

// probe sends "display off" as a command byte; an absent device NACKs.
func probe(bus drivers.I2C, addr uint16) error {
	if bus == nil {
		return &errcode.E{C: errcode.DisplayNotFound, Op: "hal.display", Msg: "no bus"}
	}
	return errcode.Wrap(errcode.DisplayNotFound, "hal.display", bus.Tx(addr, []byte{0x00, 0xAE}, nil))
}
