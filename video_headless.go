//go:build headless

// video_headless.go - a Display with no window, used for CI and selected
// by the headless build tag: it drains the VBlank ticker's redraw signals without
// touching a graphics library, mirroring the teacher's
// video_backend_headless.go escape hatch for environments with no display
// server.

package main

import (
	"context"

	"github.com/rs/zerolog/log"
)

// HeadlessDisplay runs the machine without rendering or reading input; it
// exists so the CPU core and cabinet I/O can be exercised end-to-end
// without a display server.
type HeadlessDisplay struct{}

// NewHeadlessDisplay returns a no-op Display.
func NewHeadlessDisplay() *HeadlessDisplay {
	return &HeadlessDisplay{}
}

// headlessBuild reports which Display implementation this binary was
// compiled with.
const headlessBuild = true

// newDisplay returns the Display this build provides; scale is unused.
func newDisplay(scale int) Display {
	return NewHeadlessDisplay()
}

// Run drains redraw signals until ctx is canceled; the caller (main's
// runCPU goroutine) is the only goroutine that steps the CPU, so this loop
// never touches machine directly.
func (d *HeadlessDisplay) Run(ctx context.Context, machine *Machine, ticker *VBlankTicker) error {
	log.Info().Msg("running headless, no window will open")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Redraw():
		}
	}
}
