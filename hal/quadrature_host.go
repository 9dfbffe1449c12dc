//go:build !rp2040 && !rp2350

package hal

var (
	// next A<<1|B state for one count, indexed by the current state
	quadForward = [4]uint8{0b00: 0b11, 0b01: 0b11, 0b10: 0b00, 0b11: 0b00}
	quadReverse = [4]uint8{0b00: 0b10, 0b01: 0b10, 0b10: 0b01, 0b11: 0b01}
)

// StepQuadrature moves the fake encoder pins a and b by one count in the
// direction of dir (positive is clockwise) and raises a single interrupt
// on a, the way one detent of the knob lands on the decoder.
func StepQuadrature(a, b *FakePin, dir int) {
	var cur uint8
	if a.Get() {
		cur |= 2
	}
	if b.Get() {
		cur |= 1
	}
	next := quadForward[cur]
	if dir < 0 {
		next = quadReverse[cur]
	}
	a.Preset(next&2 != 0)
	b.Preset(next&1 != 0)
	a.Strobe()
}
