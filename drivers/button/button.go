// Package button debounces a push button that is sampled from the main
// loop. Edges are never taken from interrupts; Resync is called once per
// tick with the current time.
package button

import "time"

// Pin is the read side of a GPIO input.
type Pin interface {
	Get() bool
}

// Debouncer commits a raw level once it has been stable for the debounce
// interval. A committed press sets a sticky edge flag that stays set until
// a consumer takes or clears it.
type Debouncer struct {
	pin          Pin
	pressedLevel bool
	debounceMs   int64

	started    bool
	lastRaw    bool
	lastChange int64
	debounced  bool // true while pressed
	edge       bool
}

// New returns a debouncer for pin. pressedLevel is the raw level read while
// the button is held.
func New(pin Pin, pressedLevel bool, debounce time.Duration) *Debouncer {
	if debounce < 0 {
		debounce = 0
	}
	return &Debouncer{
		pin:          pin,
		pressedLevel: pressedLevel,
		debounceMs:   debounce.Milliseconds(),
	}
}

// Resync samples the pin and reports true exactly on the committed
// not-pressed to pressed transition.
func (d *Debouncer) Resync(nowMs int64) bool {
	raw := d.pin.Get()
	if !d.started || raw != d.lastRaw {
		d.started = true
		d.lastChange = nowMs
	}
	d.lastRaw = raw
	if nowMs-d.lastChange < d.debounceMs {
		return false
	}
	pressed := raw == d.pressedLevel
	rose := pressed && !d.debounced
	d.debounced = pressed
	if rose {
		d.edge = true
	}
	return rose
}

// Pressed is the debounced level.
func (d *Debouncer) Pressed() bool { return d.debounced }

// PressedEdge reports whether a press is pending without consuming it.
func (d *Debouncer) PressedEdge() bool { return d.edge }

// TakePressed consumes a pending press.
func (d *Debouncer) TakePressed() bool {
	e := d.edge
	d.edge = false
	return e
}

// ClearPressed drops a pending press without reporting it.
func (d *Debouncer) ClearPressed() { d.edge = false }
