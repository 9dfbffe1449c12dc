//go:build !rp2040 && !rp2350

package main

import "audiomenu-go/hal"

// knob drives the fake encoder and button pins.
type knob struct {
	a, b         *hal.FakePin
	button       *hal.FakePin
	pressedLevel bool
}

// turn moves n detents; negative n turns back.
func (k *knob) turn(n int) {
	dir := 1
	if n < 0 {
		dir, n = -1, -n
	}
	for i := 0; i < n; i++ {
		hal.StepQuadrature(k.a, k.b, dir)
	}
}

// hold sets the button level for held. Repeated calls with the same value
// do not raise edges.
func (k *knob) hold(held bool) {
	lvl := !k.pressedLevel
	if held {
		lvl = k.pressedLevel
	}
	if k.button.Get() != lvl {
		k.button.Set(lvl)
	}
}
