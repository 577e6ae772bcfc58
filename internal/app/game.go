//go:build ebiten

package app

import (
	"time"

	"counterlife/internal/render"
	"counterlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.FramePainter
	hud     *ui.HUD
}

// New constructs a Game around ctl. showHUD enables the status panel.
func New(ctl *Controller, showHUD bool) *Game {
	g := &Game{ctl: ctl, painter: render.NewFramePainter()}
	if showHUD {
		g.hud = ui.NewHUD()
	}
	return g
}

// WindowSize returns the framebuffer size in pixels.
func (g *Game) WindowSize() (int, int) {
	f := g.ctl.Frame()
	return f.Width, f.Height
}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.ctl.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.Reseed(time.Now().UnixNano())
	}

	px, py := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctl.PointerDown(px, py)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctl.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctl.PointerMove(px, py)
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		dir := 1
		if dy < 0 {
			dir = -1
		}
		if g.ctl.Zoom(dir) {
			ebiten.SetWindowSize(g.WindowSize())
		}
	}

	g.ctl.Update(time.Now())
	return nil
}

// Draw blits the current framebuffer and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctl.Frame())
	if g.hud != nil {
		g.hud.Draw(screen, g.ctl.Status())
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
