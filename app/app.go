// Package app wires the menu firmware together. The same wiring runs on
// the board (main.go) and in the host simulator (cmd/menusim).
package app

import (
	"context"
	"log/slog"
	"time"

	"tinygo.org/x/drivers"

	"audiomenu-go/bus"
	"audiomenu-go/drivers/button"
	"audiomenu-go/drivers/encoder"
	"audiomenu-go/drivers/oled"
	"audiomenu-go/hal"
	"audiomenu-go/services/audio"
	"audiomenu-go/services/config"
	"audiomenu-go/services/heartbeat"
	"audiomenu-go/services/network"
	"audiomenu-go/services/storage"
	"audiomenu-go/services/ui"
	"audiomenu-go/x/logx"
	"audiomenu-go/x/timex"
)

// VolumeOffset is where the volume byte lives in the flash data region.
const VolumeOffset = 0

// Platform is what the board or the simulator provides.
type Platform struct {
	Pins    hal.PinFactory
	Display drivers.Displayer // nil runs headless
	Flash   hal.BlockDevice   // nil disables persistence
	Network network.Status    // nil follows network/address on the bus
	Audio   audio.Sink        // optional output backend
	Clock   timex.Clock       // nil uses the system clock
}

type System struct {
	Device  config.Device
	Bus     *bus.Bus
	Engine  *ui.Engine
	UI      *ui.Service
	Audio   *audio.Controller
	Volume  *ui.VolumeSetting
	Network network.Status
	Encoder *encoder.Decoder
	Button  *button.Debouncer

	heartbeat *heartbeat.Service
	cfgSvc    *config.ConfigService
	deviceID  string
	unbind    func()
	log       *slog.Logger
}

// New claims the pins, builds every service and binds the encoder
// interrupts. Nothing runs until Run.
func New(deviceID string, dev config.Device, p Platform, log *slog.Logger) (*System, error) {
	log = logx.Component(log, "app")

	in, err := hal.ClaimInputs(p.Pins, dev.Board())
	if err != nil {
		return nil, err
	}

	b := bus.NewBus(8)
	s := &System{
		Device:   dev,
		Bus:      b,
		Encoder:  encoder.New(in.EncoderA, in.EncoderB),
		Button:   button.New(in.Button, dev.Pins.ButtonPressedLevel, time.Duration(dev.UI.DebounceMs)*time.Millisecond),
		cfgSvc:   config.NewConfigService(log),
		deviceID: deviceID,
		log:      log,
	}

	var surface oled.Surface = oled.Headless{W: dev.Display.Width, H: dev.Display.Height}
	if p.Display != nil {
		surface = oled.NewCanvas(p.Display)
	}

	var store ui.ByteStore
	if p.Flash != nil {
		store = storage.NewByteStore(p.Flash, VolumeOffset, log)
	}
	s.Volume = ui.NewVolumeSetting(store, dev.Audio.DefaultVolume, log)

	s.Audio = audio.NewController(b.NewConnection("audio"), p.Audio, log)
	s.Audio.SetVolume(s.Volume.Get())

	s.Network = p.Network
	if s.Network == nil {
		s.Network = network.Track(b.NewConnection("network"))
	}

	s.Engine = ui.NewEngine(ui.ConfigFrom(dev.UI), ui.Deps{
		Display: surface,
		Encoder: s.Encoder,
		Button:  s.Button,
		Clock:   p.Clock,
		Catalog: ui.NewControlCatalog(ui.AppDeps{Audio: s.Audio, Volume: s.Volume, Network: s.Network}),
		Log:     log,
	})

	s.unbind, err = hal.BindEdges(s.Engine.OnEdgeChange, in.EncoderA, in.EncoderB)
	if err != nil {
		return nil, err
	}

	s.UI = ui.NewService(s.Engine, b.NewConnection("ui"), time.Duration(dev.UI.TickMs)*time.Millisecond)
	s.heartbeat = heartbeat.New(in.LED, time.Duration(dev.Heartbeat.Interval*float64(time.Second)), log)
	return s, nil
}

// Run publishes the config, starts the heartbeat, shows the greeting and
// drives the UI until ctx is done.
func (s *System) Run(ctx context.Context) {
	defer s.unbind()

	s.cfgSvc.Start(config.WithDevice(ctx, s.deviceID), s.Bus.NewConnection("config"))
	s.heartbeat.Start(ctx, s.Bus.NewConnection("heartbeat"))

	s.log.Info("boot", "device", s.Device.Device.Name, "version", s.Device.Device.Version, "volume", s.Volume.Get())
	s.Engine.Welcome(s.Device.Device.Name, s.Device.Device.Version)
	s.UI.Run(ctx)
}
