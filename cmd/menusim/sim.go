//go:build !rp2040 && !rp2350

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"audiomenu-go/app"
	"audiomenu-go/drivers/oled"
	"audiomenu-go/hal"
	"audiomenu-go/services/config"
	"audiomenu-go/services/network"
	"audiomenu-go/x/logx"
	"audiomenu-go/x/strx"
)

const flashSize = 64 * 1024

// simulator owns the host side of the board: pins, panel and flash.
type simulator struct {
	opts  options
	dev   config.Device
	pins  *hal.HostPinFactory
	fb    *oled.Framebuffer
	flash *hal.FileFlash
	sys   *app.System
	log   *slog.Logger
}

func newSimulator(o options) (*simulator, error) {
	dev, err := config.Load(o.device)
	if err != nil {
		return nil, err
	}
	log := logx.New(os.Stderr, logx.ParseLevel(strx.Coalesce(o.logLevel, dev.LogLevel)))

	s := &simulator{
		opts: o,
		dev:  dev,
		pins: &hal.HostPinFactory{},
		fb:   oled.NewFramebuffer(dev.Display.Width, dev.Display.Height),
		log:  log,
	}
	p := app.Platform{
		Pins:    s.pins,
		Display: s.fb,
	}
	if o.flashPath != "" {
		s.flash, err = hal.OpenFileFlash(o.flashPath, flashSize)
		if err != nil {
			return nil, fmt.Errorf("open flash %s: %w", o.flashPath, err)
		}
		p.Flash = s.flash
	}

	s.sys, err = app.New(o.device, dev, p, log)
	if err != nil {
		s.Close()
		return nil, err
	}
	// the IP Address item reads whatever is announced on the bus
	network.Announce(s.sys.Bus.NewConnection("net"), strx.Coalesce(o.address, network.HostAddress()))
	return s, nil
}

func (s *simulator) Close() {
	if s.flash != nil {
		if err := s.flash.Close(); err != nil {
			s.log.Warn("closing flash", "err", err)
		}
	}
}

// knob returns the controls wired to the configured pins.
func (s *simulator) knob() *knob {
	return &knob{
		a:            s.pins.Pin(s.dev.Pins.EncA),
		b:            s.pins.Pin(s.dev.Pins.EncB),
		button:       s.pins.Pin(s.dev.Pins.Button),
		pressedLevel: s.dev.Pins.ButtonPressedLevel,
	}
}

func (s *simulator) runHeadless(ctx context.Context, out io.Writer) error {
	d, err := time.ParseDuration(s.opts.duration)
	if err != nil {
		return fmt.Errorf("--for: %w", err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	if d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	s.sys.Run(ctx)
	if s.opts.dump {
		fmt.Fprint(out, s.fb.String())
	}
	return nil
}
