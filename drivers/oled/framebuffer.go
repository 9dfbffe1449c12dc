package oled

import (
	"image/color"
	"strings"
	"sync"
)

// Framebuffer is an in-memory monochrome Displayer. Display copies the
// draw buffer to the visible frame, like a panel refresh. The visible
// frame may be read from another goroutine.
type Framebuffer struct {
	w, h int16
	draw []bool

	mu      sync.Mutex
	visible []bool
	frames  int
}

func NewFramebuffer(w, h int16) *Framebuffer {
	n := int(w) * int(h)
	return &Framebuffer{w: w, h: h, draw: make([]bool, n), visible: make([]bool, n)}
}

func (f *Framebuffer) Size() (int16, int16) { return f.w, f.h }

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.draw[int(y)*int(f.w)+int(x)] = Lit(c)
}

func (f *Framebuffer) Display() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.visible, f.draw)
	f.frames++
	return nil
}

func (f *Framebuffer) ClearBuffer() {
	for i := range f.draw {
		f.draw[i] = false
	}
}

// Frames counts Display calls.
func (f *Framebuffer) Frames() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frames
}

// Pixel reads the visible frame.
func (f *Framebuffer) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visible[int(y)*int(f.w)+int(x)]
}

// CountLit counts visible pixels that are on in the rectangle [x0,x1)×[y0,y1).
func (f *Framebuffer) CountLit(x0, y0, x1, y1 int16) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if f.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

// Blank reports whether the visible frame is entirely off.
func (f *Framebuffer) Blank() bool { return f.CountLit(0, 0, f.w, f.h) == 0 }

// String renders the visible frame as '#'/'.' rows, for test failure output.
func (f *Framebuffer) String() string {
	var b strings.Builder
	for y := int16(0); y < f.h; y++ {
		for x := int16(0); x < f.w; x++ {
			if f.Pixel(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Headless is the Surface used when no panel answered at boot.
type Headless struct {
	W, H int16
}

func (Headless) Clear()                                      {}
func (Headless) SetCursor(x, y int16)                        {}
func (Headless) SetTextSize(n int16)                         {}
func (Headless) SetColor(fg color.RGBA)                      {}
func (Headless) SetColors(fg, bg color.RGBA)                 {}
func (Headless) DrawText(s string)                           {}
func (Headless) DrawLine(x0, y0, x1, y1 int16, c color.RGBA) {}
func (Headless) Present() error                              { return nil }
func (h Headless) Width() int16                              { return h.W }
func (h Headless) Height() int16                             { return h.H }
