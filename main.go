// main.go - CLI entry point, grounded on the teacher's main.go bootstrap
// (flag parsing, here through cobra; logging setup; then handing off to
// the video backend's own run loop).

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	var (
		romPath  string
		scale    int
		headless bool
		logLevel string
	)

	root := &cobra.Command{
		Use:   "invaders",
		Short: "Intel 8080 arcade hardware emulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(logLevel)

			if headless && !headlessBuild {
				log.Warn().Msg("--headless requested but this binary was built with the windowed display backend")
			}

			machine := NewMachine()
			if romPath != "" {
				if err := machine.LoadROMFile(romPath); err != nil {
					return err
				}
			}

			ticker := NewVBlankTicker(machine)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			go ticker.Run(ctx)
			go runCPU(ctx, machine)

			display := newDisplay(scale)
			return display.Run(ctx, machine, ticker)
		},
	}

	root.Flags().StringVar(&romPath, "rom", "", "path to the ROM image to load at address 0")
	root.Flags().IntVar(&scale, "scale", 3, "window scale factor (windowed builds only)")
	root.Flags().BoolVar(&headless, "headless", false, "request the headless display backend")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("invaders exited with an error")
	}
}

// runCPU steps the CPU continuously until ctx is canceled or a Step
// returns an error, which is logged and treated as fatal to the emulated
// program (the CPU is left halted in place; the CLI process itself keeps
// running so the window can still be closed cleanly).
func runCPU(ctx context.Context, machine *Machine) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
			if err := machine.Step(); err != nil {
				log.Error().Err(err).Msg("cpu step failed")
				machine.CPU.Halted = true
				return
			}
		}
	}
}
