package ui

import (
	"time"

	"audiomenu-go/services/config"
)

// Config holds the engine's layout and timing constants.
type Config struct {
	Timeout         time.Duration // inactivity before the display turns off
	ItemTrigger     int32         // encoder counts per menu step
	MaxItems        int
	DisplayMaxLines int
	TopLine         int16 // y of the first menu row; the separator sits just above
	LineSpace       int16
	TitleBudget     int // titles longer than this drop to text size 1
	LargeText       bool
}

func DefaultConfig() Config {
	return ConfigFrom(config.Defaults().UI)
}

// ConfigFrom converts the ui section of the device config.
func ConfigFrom(c config.UI) Config {
	return Config{
		Timeout:         time.Duration(c.TimeoutMs) * time.Millisecond,
		ItemTrigger:     int32(c.ItemTrigger),
		MaxItems:        c.MaxItems,
		DisplayMaxLines: c.DisplayMaxLines,
		TopLine:         int16(c.TopLine),
		LineSpace:       int16(c.LineSpace),
		TitleBudget:     c.TitleBudget,
		LargeText:       c.LargeText,
	}
}
