// Package encoder decodes a two-channel quadrature rotary encoder.
//
// OnEdgeChange is the interrupt entry point: bind it to both edges of both
// channels. It only reads the pins and updates atomics. The main loop
// consumes accumulated movement with Drain, one trigger at a time:
//
//	dec := encoder.New(pinA, pinB)
//	pinA.SetIRQ(hal.EdgeBoth, dec.OnEdgeChange)
//	...
//	switch dec.Drain(cfg.ItemTrigger) { case +1: ...; case -1: ... }
package encoder

import "sync/atomic"

// Pin is the read side of a GPIO input.
type Pin interface {
	Get() bool
}

// delta is indexed by prev<<2 | cur where a state is A<<1 | B.
// Same-state entries are never consulted (bounce returns early).
var delta = [16]int8{
	0b0000: 0, 0b0001: 0, 0b0010: -1, 0b0011: +1,
	0b0100: 0, 0b0101: 0, 0b0110: -1, 0b0111: +1,
	0b1000: +1, 0b1001: -1, 0b1010: 0, 0b1011: 0,
	0b1100: +1, 0b1101: -1, 0b1110: 0, 0b1111: 0,
}

// invalid marks 00<->01 and 10<->11, which this wiring never produces
// from a clean detent.
var invalid = [16]bool{
	0b0001: true, 0b0100: true, 0b1011: true, 0b1110: true,
}

// Decoder holds the encoder state shared between the ISR and the main loop.
type Decoder struct {
	a, b Pin

	prev    atomic.Uint32 // last levels, A<<1|B
	pos     atomic.Int32
	invalid atomic.Uint32
}

// New samples the initial levels of a and b.
func New(a, b Pin) *Decoder {
	d := &Decoder{a: a, b: b}
	d.prev.Store(d.read())
	return d
}

func (d *Decoder) read() uint32 {
	var s uint32
	if d.a.Get() {
		s |= 2
	}
	if d.b.Get() {
		s |= 1
	}
	return s
}

// OnEdgeChange runs in interrupt context. No allocation, no blocking.
func (d *Decoder) OnEdgeChange() {
	cur := d.read()
	prev := d.prev.Load()
	if cur == prev {
		return
	}
	idx := prev<<2 | cur
	if invalid[idx] {
		d.invalid.Add(1)
	} else {
		d.pos.Add(int32(delta[idx]))
	}
	d.prev.Store(cur)
}

// Position is the accumulated, not yet drained, movement.
func (d *Decoder) Position() int32 { return d.pos.Load() }

// Invalid counts transitions that skipped a state since New.
func (d *Decoder) Invalid() uint32 { return d.invalid.Load() }

// Drain consumes at most one trigger's worth of movement and reports its
// direction: +1, -1, or 0 when |position| < trigger. A trigger below 1 is
// treated as 1.
func (d *Decoder) Drain(trigger int32) int {
	if trigger < 1 {
		trigger = 1
	}
	for {
		p := d.pos.Load()
		switch {
		case p >= trigger:
			if d.pos.CompareAndSwap(p, p-trigger) {
				return +1
			}
		case p <= -trigger:
			if d.pos.CompareAndSwap(p, p+trigger) {
				return -1
			}
		default:
			return 0
		}
	}
}

// Reset discards pending movement.
func (d *Decoder) Reset() { d.pos.Swap(0) }
