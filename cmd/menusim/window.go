//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var errQuit = errors.New("quit")

// keymap maps keys to detents; anything else is ignored.
var keymap = map[ebiten.Key]int{
	ebiten.KeyArrowRight: 1,
	ebiten.KeyJ:          1,
	ebiten.KeyArrowLeft:  -1,
	ebiten.KeyK:          -1,
}

func pressKeys() []ebiten.Key { return []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter} }

// runWindow blocks until the window closes. The firmware runs on its own
// goroutine with the system clock; the window only feeds pins and reads
// the visible frame.
func (s *simulator) runWindow() error {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.sys.Run(ctx)
	}()

	w, h := s.fb.Size()
	scale := s.opts.scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowTitle("menusim (" + s.dev.Device.Name + " " + s.dev.Device.Version + ")")
	ebiten.SetWindowSize(int(w)*scale, int(h)*scale)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(&game{sim: s, knob: s.knob(), w: int(w), h: int(h)})
	cancel()
	<-done
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

type game struct {
	sim  *simulator
	knob *knob
	w, h int
	img  *ebiten.Image
	pix  []byte
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	for key, n := range keymap {
		if inpututil.IsKeyJustPressed(key) {
			g.knob.turn(n)
		}
	}
	held := false
	for _, key := range pressKeys() {
		if ebiten.IsKeyPressed(key) {
			held = true
		}
	}
	g.knob.hold(held)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.w, g.h)
		g.pix = make([]byte, 4*g.w*g.h)
	}
	fillRGBA(g.pix, g.sim.fb, g.w, g.h)
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) { return g.w, g.h }
