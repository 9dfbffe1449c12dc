package ui

import (
	"image/color"
	"strconv"
	"testing"

	"audiomenu-go/drivers/oled"
	"audiomenu-go/services/network"
	"audiomenu-go/x/timex"
)

// fakeEncoder holds a pending count. Entries in feed are added one per
// Drain call, standing in for knob movement while a loop is running.
type fakeEncoder struct {
	pos     int32
	invalid uint32
	resets  int
	feed    []int32
}

func (f *fakeEncoder) OnEdgeChange() {}

func (f *fakeEncoder) Drain(trigger int32) int {
	if len(f.feed) > 0 {
		f.pos += f.feed[0]
		f.feed = f.feed[1:]
	}
	switch {
	case f.pos >= trigger:
		f.pos -= trigger
		return +1
	case f.pos <= -trigger:
		f.pos += trigger
		return -1
	}
	return 0
}

func (f *fakeEncoder) Reset() {
	f.pos = 0
	f.resets++
}

func (f *fakeEncoder) Invalid() uint32 { return f.invalid }

// fakeButton commits a press on the Resync after press(), or on the
// pressOn-th Resync call.
type fakeButton struct {
	fresh   bool
	edge    bool
	resyncs int
	pressOn int
}

func (b *fakeButton) press() { b.fresh = true }

func (b *fakeButton) Resync(int64) bool {
	b.resyncs++
	if b.pressOn > 0 && b.resyncs == b.pressOn {
		b.fresh = true
	}
	if !b.fresh {
		return false
	}
	b.fresh = false
	b.edge = true
	return true
}

func (b *fakeButton) TakePressed() bool {
	e := b.edge
	b.edge = false
	return e
}

func (b *fakeButton) ClearPressed() { b.edge = false }

type fakeSink struct {
	playing bool
	volume  int
	calls   []string
}

func (s *fakeSink) Play() {
	s.playing = true
	s.calls = append(s.calls, "play")
}

func (s *fakeSink) Pause() {
	s.playing = false
	s.calls = append(s.calls, "pause")
}

func (s *fakeSink) SetVolume(v int) {
	s.volume = v
	s.calls = append(s.calls, "volume")
}

type memStore struct {
	b     byte
	saves int
	err   error
}

func (m *memStore) Load() (byte, error) { return m.b, m.err }

func (m *memStore) Save(v byte) error {
	m.saves++
	m.b = v
	return nil
}

// recSurface records draw calls as strings. blanks counts frames
// presented with nothing drawn.
type recSurface struct {
	ops    []string
	blanks int
}

func (r *recSurface) add(s string) { r.ops = append(r.ops, s) }

func (r *recSurface) Clear()               { r.ops = r.ops[:0] }
func (r *recSurface) SetCursor(x, y int16) { r.add("cursor " + itoa16(x) + "," + itoa16(y)) }
func (r *recSurface) SetTextSize(n int16)  { r.add("size " + itoa16(n)) }
func (r *recSurface) DrawText(s string)    { r.add("text " + s) }
func (r *recSurface) Width() int16         { return 128 }
func (r *recSurface) Height() int16        { return 64 }

func (r *recSurface) Present() error {
	if len(r.ops) == 0 {
		r.blanks++
	}
	return nil
}

func (r *recSurface) SetColor(fg color.RGBA) { r.add("color " + shade(fg)) }

func (r *recSurface) SetColors(fg, bg color.RGBA) { r.add("colors " + shade(fg) + "/" + shade(bg)) }

func (r *recSurface) DrawLine(x0, y0, x1, y1 int16, c color.RGBA) {
	r.add("line " + itoa16(x0) + "," + itoa16(y0) + "-" + itoa16(x1) + "," + itoa16(y1))
}

func (r *recSurface) index(op string) int {
	for i, o := range r.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func itoa16(n int16) string { return strconv.Itoa(int(n)) }

func shade(c color.RGBA) string {
	if oled.Lit(c) {
		return "white"
	}
	return "black"
}

type rig struct {
	e     *Engine
	enc   *fakeEncoder
	btn   *fakeButton
	clk   *timex.Manual
	sink  *fakeSink
	store *memStore
	cfg   Config
}

type rigOpt func(*rig, *Config, *Deps)

func withSurface(s oled.Surface) rigOpt {
	return func(_ *rig, _ *Config, d *Deps) { d.Display = s }
}

func withConfig(f func(*Config)) rigOpt {
	return func(_ *rig, c *Config, _ *Deps) { f(c) }
}

func newRig(t *testing.T, stored byte, opts ...rigOpt) *rig {
	t.Helper()
	r := &rig{
		enc:   &fakeEncoder{},
		btn:   &fakeButton{},
		clk:   &timex.Manual{},
		sink:  &fakeSink{},
		store: &memStore{b: stored},
	}
	vol := NewVolumeSetting(r.store, 50, nil)
	cfg := DefaultConfig()
	deps := Deps{
		Encoder: r.enc,
		Button:  r.btn,
		Clock:   r.clk,
		Catalog: NewControlCatalog(AppDeps{Audio: r.sink, Volume: vol, Network: network.Static("10.1.2.3")}),
	}
	for _, o := range opts {
		o(r, &cfg, &deps)
	}
	r.cfg = cfg
	r.e = NewEngine(cfg, deps)
	return r
}

// press commits a button press on the next tick.
func (r *rig) press() {
	r.btn.press()
	r.e.Tick()
}

// turn feeds n trigger-sized steps, one tick each.
func (r *rig) turn(n int) {
	dir := int32(1)
	if n < 0 {
		dir, n = -1, -n
	}
	for i := 0; i < n; i++ {
		r.enc.pos += dir * r.cfg.ItemTrigger
		r.e.Tick()
	}
}
