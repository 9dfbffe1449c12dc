// Package oled is the drawing surface the menu renders onto. Canvas adapts
// any tinygo.org/x/drivers Displayer (the SSD1306 on hardware, a
// Framebuffer in tests and the simulator) to a cursor-and-text-size API.
package oled

import "image/color"

var (
	Black = color.RGBA{A: 0xff}
	White = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Surface is the display capability consumed by the menu renderer.
type Surface interface {
	Clear()
	SetCursor(x, y int16)
	SetTextSize(n int16)
	SetColor(fg color.RGBA)
	SetColors(fg, bg color.RGBA)
	DrawText(s string)
	DrawLine(x0, y0, x1, y1 int16, c color.RGBA)
	Present() error
	Width() int16
	Height() int16
}

// Lit reports whether c turns a monochrome pixel on.
func Lit(c color.RGBA) bool { return c.R|c.G|c.B != 0 }
