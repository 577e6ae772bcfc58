//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 15
	hudWidth      = 200
)

// HUD draws the status panel in the top-left corner of the screen.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the panel for s onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil {
		return
	}
	lines := Lines(s)
	height := hudPadding*2 + len(lines)*hudLineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(hudWidth, float64(height))
	op.ColorScale.Scale(16.0/255, 16.0/255, 20.0/255, 0.75)
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, line := range lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, fg)
	}
}
