package main

import (
	"context"
	"time"

	"audiomenu-go/app"
	"audiomenu-go/hal"
	"audiomenu-go/services/config"
	"audiomenu-go/services/network"
	"audiomenu-go/x/logx"
)

const deviceID = "pico"

func main() {
	// Give the UART console a moment before the first log line.
	time.Sleep(2 * time.Second)

	console := hal.Console()
	dev, cfgErr := config.Load(deviceID)
	log := logx.New(console, logx.ParseLevel(dev.LogLevel))
	if cfgErr != nil {
		log.Warn("using default config", "err", cfgErr)
	}

	board := dev.Board()
	display, err := hal.OpenDisplay(hal.DisplayBus(), board)
	if err != nil {
		log.Error("display not found, running headless", "addr", board.DisplayAddr, "err", err)
	}

	flash, err := hal.OpenFlash()
	if err != nil {
		log.Warn("no flash, volume will not persist", "err", err)
	}

	sys, err := app.New(deviceID, dev, app.Platform{
		Pins:    hal.DefaultPinFactory(),
		Display: display,
		Flash:   flash,
		Network: network.Static(""), // no network interface on this board
	}, log)
	if err != nil {
		log.Error("startup failed", "err", err)
		select {}
	}

	sys.Run(context.Background())
}
