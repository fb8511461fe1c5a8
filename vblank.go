// vblank.go - the 60Hz video-blank timer that feeds RST1/RST2 to the CPU,
// grounded on the original emulator's SDL_USEREVENT/update_vram_cb push-
// event pattern in space.c, reimplemented as a goroutine that raises
// interrupts through CPU.RaiseInterrupt and signals redraws over a channel,
// rather than an OS event queue.

package main

import (
	"context"
	"time"
)

// vblankHalfPeriod is half of one 60Hz frame: the target ROM expects RST 1
// at mid-frame (a "half interrupt", used to begin drawing the upper half of
// the screen) and RST 2 at the end of the frame (a "full interrupt", used
// to finish the frame and flag it for display).
const vblankHalfPeriod = time.Second / 120

// VBlankTicker drives a Machine's interrupt pins at 120Hz, alternating
// RST 1 (half) and RST 2 (full), and reports which ticks were full frames
// on redraw so a caller can redraw only then.
type VBlankTicker struct {
	machine *Machine
	redraw  chan struct{}
}

// NewVBlankTicker returns a ticker bound to machine. Run must be called to
// start it; Redraw() receives a value once per full-frame tick.
func NewVBlankTicker(machine *Machine) *VBlankTicker {
	return &VBlankTicker{machine: machine, redraw: make(chan struct{}, 1)}
}

// Redraw is signaled once per full (RST 2) tick. The channel is buffered by
// one and non-blocking sends are used, so a host that polls slower than
// 60Hz coalesces ticks rather than backing up the timer.
func (v *VBlankTicker) Redraw() <-chan struct{} {
	return v.redraw
}

// Run drives the ticker until ctx is canceled. It must run on its own
// goroutine; RaiseInterrupt is the only CPU method safe to call cross-
// goroutine.
func (v *VBlankTicker) Run(ctx context.Context) {
	ticker := time.NewTicker(vblankHalfPeriod)
	defer ticker.Stop()

	full := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if full {
				v.machine.RaiseInterrupt(2)
				select {
				case v.redraw <- struct{}{}:
				default:
				}
			} else {
				v.machine.RaiseInterrupt(1)
			}
			full = !full
		}
	}
}
