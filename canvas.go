//go:build ebiten

package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// canvasGame adapts the driver to the ebiten.Game interface
type canvasGame struct {
	d   *driver
	err error
}

// Update advances the game by one generation per frame
func (c *canvasGame) Update() error {
	if c.err != nil {
		return c.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	more, err := c.d.tick()
	if err != nil {
		return err
	}
	if !more {
		return ebiten.Termination
	}
	return nil
}

// Draw paints live cells black on a white background
func (c *canvasGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	if err := model.Paint(c.d.grid, canvasSurface{screen: screen}); err != nil {
		c.err = err
	}
}

// Layout returns the logical canvas size
func (c *canvasGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.d.config.CanvasWidth, c.d.config.CanvasHeight
}

type canvasSurface struct {
	screen *ebiten.Image
}

func (s canvasSurface) FillRect(x, y, size int) {
	ebitenutil.DrawRect(s.screen, float64(x), float64(y), float64(size), float64(size), color.Black)
}

// runCanvas opens a window and drives the game from ebiten's frame loop
func runCanvas(d *driver) error {
	ebiten.SetWindowTitle("go-life")
	ebiten.SetWindowSize(d.config.CanvasWidth, d.config.CanvasHeight)
	ebiten.SetTPS(max(1, int(time.Second/d.config.FrameRate)))

	err := ebiten.RunGame(&canvasGame{d: d})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[runCanvas]")
	}
	return nil
}
