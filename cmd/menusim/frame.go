//go:build !rp2040 && !rp2350

package main

import "audiomenu-go/drivers/oled"

// panel colours: white-on-black like the SSD1306 module
const (
	litLevel = 0xE8
	offLevel = 0x08
)

// fillRGBA writes the visible frame of fb into dst as RGBA, four bytes per
// pixel, row-major.
func fillRGBA(dst []byte, fb *oled.Framebuffer, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := byte(offLevel)
			if fb.Pixel(int16(x), int16(y)) {
				v = litLevel
			}
			j := 4 * (y*w + x)
			dst[j+0] = v
			dst[j+1] = v
			dst[j+2] = v
			dst[j+3] = 0xFF
		}
	}
}
