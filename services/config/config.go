package config

import (
	"context"
	"encoding/json"
	"log/slog"

	"audiomenu-go/bus"
	"audiomenu-go/errcode"
	"audiomenu-go/hal"
	"audiomenu-go/x/logx"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
)

type ctxKey string

// CtxDeviceKey is the context key holding the device ID.
const CtxDeviceKey ctxKey = "device"

// WithDevice returns ctx carrying the device ID used to pick a config.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, CtxDeviceKey, device)
}

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// -----------------------------------------------------------------------------
// Typed configuration
// -----------------------------------------------------------------------------

type UI struct {
	TimeoutMs       int  `json:"timeout_ms"`
	DebounceMs      int  `json:"debounce_ms"`
	ItemTrigger     int  `json:"item_trigger"`
	MaxItems        int  `json:"max_items"`
	DisplayMaxLines int  `json:"display_max_lines"`
	TopLine         int  `json:"top_line"`
	LineSpace       int  `json:"line_space"`
	TitleBudget     int  `json:"title_budget"`
	LargeText       bool `json:"large_text"`
	TickMs          int  `json:"tick_ms"`
}

type Pins struct {
	EncA               int  `json:"enc_a"`
	EncB               int  `json:"enc_b"`
	Button             int  `json:"button"`
	LED                int  `json:"led"`
	ButtonPressedLevel bool `json:"button_pressed_level"`
}

type Display struct {
	Addr   uint16 `json:"addr"`
	Width  int16  `json:"width"`
	Height int16  `json:"height"`
}

type Heartbeat struct {
	Interval float64 `json:"interval"` // seconds
}

type Identity struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Audio struct {
	DefaultVolume int `json:"default_volume"`
}

// Device is the full per-device configuration.
type Device struct {
	UI        UI        `json:"ui"`
	Pins      Pins      `json:"pins"`
	Display   Display   `json:"display"`
	Heartbeat Heartbeat `json:"heartbeat"`
	Device    Identity  `json:"device"`
	Audio     Audio     `json:"audio"`
	LogLevel  string    `json:"log_level"`
}

// Defaults is the configuration used for any field the JSON leaves out.
func Defaults() Device {
	b := hal.PicoDefault()
	return Device{
		UI: UI{
			TimeoutMs:       10000,
			DebounceMs:      100,
			ItemTrigger:     1,
			MaxItems:        12,
			DisplayMaxLines: 5,
			TopLine:         18,
			LineSpace:       9,
			TitleBudget:     10,
			TickMs:          10,
		},
		Pins: Pins{
			EncA:               b.EncoderA,
			EncB:               b.EncoderB,
			Button:             b.Button,
			LED:                b.LED,
			ButtonPressedLevel: b.ButtonPressedLevel,
		},
		Display:   Display{Addr: b.DisplayAddr, Width: b.DisplayWidth, Height: b.DisplayHeight},
		Heartbeat: Heartbeat{Interval: 1},
		Device:    Identity{Name: "ESP-Music", Version: "0.2"},
		Audio:     Audio{DefaultVolume: 50},
		LogLevel:  "info",
	}
}

// Decode overlays raw JSON on Defaults.
func Decode(raw []byte) (Device, error) {
	d := Defaults()
	if err := json.Unmarshal(raw, &d); err != nil {
		return Defaults(), errcode.Wrap(errcode.InvalidConfig, "config.decode", err)
	}
	if err := d.Validate(); err != nil {
		return Defaults(), err
	}
	return d, nil
}

// Load resolves the embedded config for device. On any failure the
// defaults are returned together with the error.
func Load(device string) (Device, error) {
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return Defaults(), &errcode.E{C: errcode.InvalidConfig, Op: "config.load", Msg: "no embedded config for device: " + device}
	}
	return Decode(raw)
}

// Validate rejects values the UI cannot run with.
func (d Device) Validate() error {
	bad := func(msg string) error {
		return &errcode.E{C: errcode.InvalidConfig, Op: "config.validate", Msg: msg}
	}
	u := d.UI
	switch {
	case u.TimeoutMs <= 0:
		return bad("ui.timeout_ms must be > 0")
	case u.DebounceMs < 0:
		return bad("ui.debounce_ms must be >= 0")
	case u.ItemTrigger < 1:
		return bad("ui.item_trigger must be >= 1")
	case u.MaxItems < 1:
		return bad("ui.max_items must be >= 1")
	case u.DisplayMaxLines < 1:
		return bad("ui.display_max_lines must be >= 1")
	case u.TickMs <= 0:
		return bad("ui.tick_ms must be > 0")
	case d.Display.Width <= 0 || d.Display.Height <= 0:
		return bad("display size must be positive")
	case d.Heartbeat.Interval < 0:
		return bad("heartbeat.interval must be >= 0")
	}
	return nil
}

// Board maps the pin and display sections onto a hal.Board.
func (d Device) Board() hal.Board {
	return hal.Board{
		EncoderA:           d.Pins.EncA,
		EncoderB:           d.Pins.EncB,
		Button:             d.Pins.Button,
		LED:                d.Pins.LED,
		ButtonPressedLevel: d.Pins.ButtonPressedLevel,
		DisplayAddr:        d.Display.Addr,
		DisplayWidth:       d.Display.Width,
		DisplayHeight:      d.Display.Height,
	}
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name string
	log  *slog.Logger
}

func NewConfigService(log *slog.Logger) *ConfigService {
	return &ConfigService{Name: serviceName, log: logx.Component(log, serviceName)}
}

// publishConfig reads the device config from embedded data and publishes
// each top-level key as a retained message under config/<key>.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(CtxDeviceKey).(string)
	if device == "" {
		return &errcode.E{C: errcode.InvalidParams, Op: "config.publish", Msg: "missing device ID in context"}
	}

	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return &errcode.E{C: errcode.InvalidConfig, Op: "config.publish", Msg: "no embedded config for device: " + device}
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return errcode.Wrap(errcode.InvalidConfig, "config.publish", err)
	}

	for k, v := range m {
		conn.Publish(conn.NewMessage(bus.T(configPrefix, k), v, true))
	}
	s.log.Info("config published", "device", device, "keys", len(m))
	return nil
}

// Start launches the config publisher in a goroutine.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) {
	go func() {
		if err := s.publishConfig(ctx, conn); err != nil {
			s.log.Error("config publish failed", "err", err)
		}
	}()
}
