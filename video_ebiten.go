//go:build !headless

// video_ebiten.go - the ebiten-backed Display, grounded on the teacher's
// video_backend_ebiten.go (game loop, keyboard polling via inpututil, and
// an RGBA framebuffer rebuilt from the emulated VRAM each redraw).

package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

const (
	screenWidth  = 224
	screenHeight = 256
)

// headlessBuild reports which Display implementation this binary was
// compiled with, so main can warn if --headless was requested but ignored.
const headlessBuild = false

// newDisplay returns the Display this build provides; scale is only
// meaningful for the windowed build.
func newDisplay(scale int) Display {
	return NewEbitenDisplay(scale)
}

// EbitenDisplay is the default, windowed Display implementation.
type EbitenDisplay struct {
	scale   int
	machine *Machine
	ticker  *VBlankTicker
	frame   *ebiten.Image
	cancel  context.CancelFunc
}

// NewEbitenDisplay returns a Display that renders at scale times native
// resolution (224x256).
func NewEbitenDisplay(scale int) *EbitenDisplay {
	if scale < 1 {
		scale = 1
	}
	return &EbitenDisplay{scale: scale, frame: ebiten.NewImage(screenWidth, screenHeight)}
}

// Run opens the window and blocks until it is closed or ctx is canceled.
func (d *EbitenDisplay) Run(ctx context.Context, machine *Machine, ticker *VBlankTicker) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.machine = machine
	d.ticker = ticker

	go func() {
		<-ctx.Done()
	}()

	ebiten.SetWindowSize(screenWidth*d.scale, screenHeight*d.scale)
	ebiten.SetWindowTitle("Invaders")
	if err := ebiten.RunGame(d); err != nil {
		return fmt.Errorf("ebiten run: %w", err)
	}
	return nil
}

// Update polls the keyboard and redraws the framebuffer on every full
// VBlank tick, matching the teacher's "poll input and render state once
// per Update, draw the cached frame in Draw" split.
func (d *EbitenDisplay) Update() error {
	d.pollInput()

	select {
	case <-d.ticker.Redraw():
		d.renderFrame()
	default:
	}
	return nil
}

func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	screen.DrawImage(d.frame, nil)
}

func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (d *EbitenDisplay) pollInput() {
	p := d.machine.Ports
	p.SetCoin(ebiten.IsKeyPressed(ebiten.KeyC))
	p.SetP1Start(ebiten.IsKeyPressed(ebiten.Key1))
	p.SetP2Start(ebiten.IsKeyPressed(ebiten.Key2))
	p.SetP1Left(ebiten.IsKeyPressed(ebiten.KeyLeft))
	p.SetP1Right(ebiten.IsKeyPressed(ebiten.KeyRight))
	p.SetP1Shoot(ebiten.IsKeyPressed(ebiten.KeySpace))
	p.SetP2Left(ebiten.IsKeyPressed(ebiten.KeyA))
	p.SetP2Right(ebiten.IsKeyPressed(ebiten.KeyD))
	p.SetP2Shoot(ebiten.IsKeyPressed(ebiten.KeyW))
	p.SetTilt(ebiten.IsKeyPressed(ebiten.KeyT))

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Info().Msg("escape pressed, closing window")
		if d.cancel != nil {
			d.cancel()
		}
	}
}

// renderFrame rebuilds the visible framebuffer from VRAM. The source bitmap
// is stored rotated 90 degrees relative to the displayed orientation, so
// (x, y) on screen reads VRAM row x, bit (screenHeight-1-y) of that row.
func (d *EbitenDisplay) renderFrame() {
	vram := d.machine.VRAM()
	for x := 0; x < screenWidth; x++ {
		for y := 0; y < screenHeight; y++ {
			lit := monoPixel(vram, x, screenHeight-1-y)
			var c color.RGBA
			if lit {
				r, g, b := scanlineColor(y)
				c = color.RGBA{r, g, b, 255}
			} else {
				c = color.RGBA{0, 0, 0, 255}
			}
			d.frame.Set(x, y, c)
		}
	}
}
