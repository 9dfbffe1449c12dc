package ui

import (
	"audiomenu-go/drivers/oled"
	"audiomenu-go/x/conv"
	"audiomenu-go/x/mathx"
	"audiomenu-go/x/strx"
)

const (
	rowHeight = 8 // text size 1

	valueX       = 30
	valueYOffset = 5
	valueSize    = 3
)

// titleSize picks 2 for titles within the budget, else 1.
func (e *Engine) titleSize(title string) int16 {
	if len(title) > e.cfg.TitleBudget {
		return 1
	}
	return 2
}

// drawTitle draws text at the top-left, and the separator under it.
func (e *Engine) drawTitle(text string, size int16) {
	d := e.d
	d.SetColor(oled.White)
	d.SetCursor(0, 0)
	d.SetTextSize(size)
	d.DrawText(text)
	d.DrawLine(0, e.cfg.TopLine-1, d.Width(), e.cfg.TopLine-1, oled.White)
}

// headline is the title as shown in menu and message modes.
func (e *Engine) headline(title string) (string, int16) {
	if e.cfg.LargeText {
		return strx.Truncate(title, e.cfg.TitleBudget), 2
	}
	return title, e.titleSize(title)
}

// renderMenu draws a window of DisplayMaxLines rows centred on the
// highlighted item, which is drawn inverted.
func (e *Engine) renderMenu() {
	d := e.d
	m := &e.m
	d.Clear()

	if e.cfg.LargeText {
		text, size := e.headline(m.label(m.Highlighted))
		e.drawTitle(text, size)
	} else {
		e.drawTitle(m.Title, e.titleSize(m.Title))
	}

	d.SetTextSize(1)
	centre := e.cfg.DisplayMaxLines/2 + 1
	for row := 1; row <= e.cfg.DisplayMaxLines; row++ {
		item := m.Highlighted - centre + row
		d.SetCursor(0, e.cfg.TopLine+int16(row-1)*rowHeight)
		if item == m.Highlighted {
			d.SetColors(oled.Black, oled.White)
		} else {
			d.SetColor(oled.White)
		}
		if item >= 1 && item <= m.ItemCount {
			d.DrawText(m.label(item))
		} else {
			d.DrawText(" ")
		}
	}
	e.present()
}

// renderValue draws the title, the value large, the range and a bar along
// the bottom edge proportional to the value.
func (e *Engine) renderValue() {
	d := e.d
	m := &e.m
	d.Clear()
	e.drawTitle(m.Title, e.titleSize(m.Title))

	d.SetCursor(valueX, e.cfg.TopLine+valueYOffset)
	d.SetTextSize(valueSize)
	d.DrawText(conv.Itoa(m.Value))

	var buf [32]byte
	rng := conv.AppendInt(buf[:0], m.Low)
	rng = append(rng, " to "...)
	rng = conv.AppendInt(rng, m.High)
	d.SetCursor(0, d.Height()-e.cfg.LineSpace-1)
	d.SetTextSize(1)
	d.DrawText(string(rng))

	w := int(d.Width())
	bar := mathx.Map(m.Value, m.Low, m.High, 0, w)
	d.DrawLine(0, d.Height()-1, int16(bar), d.Height()-1, oled.White)
	e.present()
}

func (e *Engine) renderMessage() {
	d := e.d
	d.Clear()
	text, size := e.headline(e.m.Title)
	d.SetColor(oled.White)
	d.SetCursor(0, 0)
	d.SetTextSize(size)
	d.DrawText(text)

	d.SetCursor(0, e.cfg.TopLine)
	d.SetTextSize(1)
	d.DrawText(e.m.Body)
	e.present()
}

func (e *Engine) present() {
	if err := e.d.Present(); err != nil {
		e.log.Debug("present failed", "err", err)
	}
}
