package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	cellHeight = 8 // text row height at size 1
	baseline   = 7 // glyph ascent above the baseline
)

// bufferClearer is implemented by ssd1306.Device and Framebuffer.
type bufferClearer interface {
	ClearBuffer()
}

// Canvas draws text and lines on a Displayer. Text is positioned by its
// top-left corner and scaled by whole pixels.
type Canvas struct {
	dev  drivers.Displayer
	font tinyfont.Fonter
	w, h int16

	x, y   int16
	size   int16
	fg, bg color.RGBA
	fill   bool
}

// NewCanvas wraps dev with the proggy TinySZ 8pt font.
func NewCanvas(dev drivers.Displayer) *Canvas {
	w, h := dev.Size()
	return &Canvas{
		dev:  dev,
		font: &proggy.TinySZ8pt7b,
		w:    w,
		h:    h,
		size: 1,
		fg:   White,
		bg:   Black,
	}
}

func (c *Canvas) Width() int16  { return c.w }
func (c *Canvas) Height() int16 { return c.h }

// Clear blanks the buffer and homes the cursor. Nothing reaches the panel
// until Present.
func (c *Canvas) Clear() {
	if bc, ok := c.dev.(bufferClearer); ok {
		bc.ClearBuffer()
	} else {
		_ = tinydraw.FilledRectangle(c.dev, 0, 0, c.w, c.h, Black)
	}
	c.x, c.y = 0, 0
}

func (c *Canvas) SetCursor(x, y int16) { c.x, c.y = x, y }

func (c *Canvas) SetTextSize(n int16) {
	if n < 1 {
		n = 1
	}
	c.size = n
}

// SetColor sets a transparent-background text color.
func (c *Canvas) SetColor(fg color.RGBA) {
	c.fg = fg
	c.fill = false
}

// SetColors sets text color and an opaque background behind each line.
func (c *Canvas) SetColors(fg, bg color.RGBA) {
	c.fg, c.bg = fg, bg
	c.fill = true
}

// DrawText writes s at the cursor. '\n' moves to the start of the next
// row at the current size.
func (c *Canvas) DrawText(s string) {
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '\n' {
			continue
		}
		c.drawLine(s[start:i])
		if i < len(s) {
			c.x = 0
			c.y += cellHeight * c.size
		}
		start = i + 1
	}
}

func (c *Canvas) drawLine(s string) {
	if s == "" {
		return
	}
	_, outbox := tinyfont.LineWidth(c.font, s)
	w := int16(outbox) * c.size
	if c.fill {
		_ = tinydraw.FilledRectangle(c.dev, c.x, c.y, w, cellHeight*c.size, c.bg)
	}
	if c.size == 1 {
		tinyfont.WriteLine(c.dev, c.font, c.x, c.y+baseline, s, c.fg)
	} else {
		sc := scaled{dev: c.dev, ox: c.x, oy: c.y, n: c.size}
		tinyfont.WriteLine(&sc, c.font, 0, baseline, s, c.fg)
	}
	c.x += w
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int16, col color.RGBA) {
	tinydraw.Line(c.dev, x0, y0, x1, y1, col)
}

func (c *Canvas) Present() error { return c.dev.Display() }

// scaled magnifies glyph pixels into n×n blocks anchored at (ox, oy).
type scaled struct {
	dev    drivers.Displayer
	ox, oy int16
	n      int16
}

func (s *scaled) Size() (int16, int16) {
	w, h := s.dev.Size()
	return w / s.n, h / s.n
}

func (s *scaled) SetPixel(x, y int16, col color.RGBA) {
	px, py := s.ox+x*s.n, s.oy+y*s.n
	for dy := int16(0); dy < s.n; dy++ {
		for dx := int16(0); dx < s.n; dx++ {
			s.dev.SetPixel(px+dx, py+dy, col)
		}
	}
}

func (s *scaled) Display() error { return nil }
