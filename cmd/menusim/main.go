//go:build !rp2040 && !rp2350

// Command menusim runs the menu firmware on the desktop. The panel is drawn
// in a window, the arrow keys turn the knob and space presses it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	device    string
	flashPath string
	headless  bool
	duration  string
	dump      bool
	scale     int
	logLevel  string
	address   string
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "menusim",
		Short: "Run the audio menu firmware against a simulated board",
		Long: `menusim builds the same system the board runs, backed by host fakes:
the OLED becomes a window, flash becomes a file and the encoder and button
become keys.

Keys: Right/J turn clockwise, Left/K turn back, Space/Enter press, Esc quits.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := newSimulator(o)
			if err != nil {
				return err
			}
			defer sim.Close()
			if o.headless {
				return sim.runHeadless(cmd.Context(), cmd.OutOrStdout())
			}
			return sim.runWindow()
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.device, "device", "sim", "Embedded device config to load")
	f.StringVar(&o.flashPath, "flash", "audiomenu.flash", "File backing the simulated flash (empty disables persistence)")
	f.BoolVar(&o.headless, "headless", false, "Run without a window")
	f.StringVar(&o.duration, "for", "0s", "Stop after this long in headless mode (0 runs until interrupted)")
	f.BoolVar(&o.dump, "dump", false, "Print the final panel contents when a headless run ends")
	f.IntVar(&o.scale, "scale", 4, "Window pixels per panel pixel")
	f.StringVar(&o.logLevel, "log-level", "", "Override the config log level")
	f.StringVar(&o.address, "address", "", "Address announced to the IP Address screen (default: first host IPv4)")
	return cmd
}
