// video_interface.go - the display/input frontend contract, grounded on the
// teacher's video_interface.go VideoBackend abstraction so the CPU/Machine
// core never imports a rendering library directly.

package main

import "context"

// Display owns the window (or lack of one), translates VRAM into pixels
// once per full-frame VBlank tick, and feeds cabinet control state back
// into Ports. Run blocks until ctx is canceled or the window is closed by
// the user.
type Display interface {
	Run(ctx context.Context, machine *Machine, ticker *VBlankTicker) error
}

// monoPixel reports whether bit y (0..255) of VRAM row x (0..223) is lit,
// reading the bit-packed, 90-degree-rotated VRAM layout directly: column x
// of the (rotated) framebuffer is row x of VRAM, 32 bytes per row, with
// bit 0 of each byte as the first pixel of that byte (LSB-first).
func monoPixel(vram []byte, x, y int) bool {
	byteIndex := x*32 + y/8
	bit := uint(y % 8)
	return vram[byteIndex]&(1<<bit) != 0
}

// scanlineColor stands in for the cabinet's tri-tone transparent color
// overlay strip glued to the monitor glass: green for the top 16 lines,
// red for lines 184-239, white elsewhere. y is the row of the displayed
// 224x256 image, 0 at the top.
func scanlineColor(y int) (r, g, b byte) {
	switch {
	case y < 16:
		return 0, 255, 0
	case y >= 184 && y < 240:
		return 255, 0, 0
	default:
		return 255, 255, 255
	}
}
