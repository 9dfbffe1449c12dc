package oled

import (
	"testing"

	"tinygo.org/x/tinyfont"
)

func newTestCanvas() (*Canvas, *Framebuffer) {
	fb := NewFramebuffer(128, 64)
	return NewCanvas(fb), fb
}

func TestTextStaysInItsCell(t *testing.T) {
	c, fb := newTestCanvas()
	c.SetCursor(10, 16)
	c.DrawText("HI")
	if fb.CountLit(0, 0, 128, 64) != 0 {
		t.Fatal("pixels visible before Present")
	}
	_ = c.Present()

	in := fb.CountLit(10, 16, 40, 24)
	if in == 0 {
		t.Fatalf("no text pixels in cell:\n%s", fb)
	}
	if all := fb.CountLit(0, 0, 128, 64); all != in {
		t.Fatalf("%d pixels outside the text cell:\n%s", all-in, fb)
	}
}

func TestTextSizeScales(t *testing.T) {
	c, fb := newTestCanvas()
	c.DrawText("H")
	_ = c.Present()
	small := fb.CountLit(0, 0, 128, 64)

	c.Clear()
	c.SetTextSize(2)
	c.DrawText("H")
	_ = c.Present()
	big := fb.CountLit(0, 0, 128, 64)
	if big != 4*small {
		t.Fatalf("size 2 lit %d pixels, want 4×%d", big, small)
	}
	if fb.CountLit(0, 8, 128, 16) == 0 {
		t.Fatal("size 2 text did not reach the second row")
	}
}

func TestNewlineAdvancesRow(t *testing.T) {
	c, fb := newTestCanvas()
	c.SetCursor(50, 0)
	c.DrawText("\n\nH")
	_ = c.Present()
	if fb.CountLit(0, 0, 128, 16) != 0 {
		t.Fatalf("text drawn above row 2:\n%s", fb)
	}
	if fb.CountLit(0, 16, 20, 24) == 0 {
		t.Fatalf("text not at column 0 of row 2:\n%s", fb)
	}
}

func TestInverseFillsBackground(t *testing.T) {
	c, fb := newTestCanvas()
	c.SetColors(Black, White)
	c.SetCursor(0, 8)
	c.DrawText("H")
	_ = c.Present()
	w, _ := fb.Size()
	lit := fb.CountLit(0, 8, w, 16)
	if lit == 0 {
		t.Fatal("no background drawn")
	}
	if fb.CountLit(0, 0, w, 8) != 0 || fb.CountLit(0, 16, w, 64) != 0 {
		t.Fatal("background leaked outside the row")
	}
	_, box := tinyfont.LineWidth(c.font, "H")
	if lit >= int(box)*8 {
		t.Fatal("glyph not drawn over background")
	}
}

func TestDrawLineAndClear(t *testing.T) {
	c, fb := newTestCanvas()
	c.DrawLine(0, 63, 63, 63, White)
	_ = c.Present()
	if n := fb.CountLit(0, 63, 128, 64); n != 64 {
		t.Fatalf("line lit %d pixels, want 64", n)
	}
	c.Clear()
	_ = c.Present()
	if !fb.Blank() {
		t.Fatal("Clear left pixels on")
	}
	if fb.Frames() != 2 {
		t.Fatalf("frames = %d", fb.Frames())
	}
}
