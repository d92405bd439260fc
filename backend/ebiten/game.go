package ebitenbackend

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a Surface to the ebiten run loop. Optional hooks let
// the application draw a world layer under the overlay and run
// per-tick logic.
type Game struct {
	surface *Surface

	// OnUpdate runs every tick before input is polled.
	OnUpdate func() error
	// DrawWorld draws beneath the overlay, after the background clear.
	DrawWorld func(screen *ebiten.Image)
}

// NewGame wraps the surface for ebiten.RunGame.
func NewGame(surface *Surface) *Game {
	return &Game{surface: surface}
}

func (g *Game) Update() error {
	if g.OnUpdate != nil {
		if err := g.OnUpdate(); err != nil {
			return err
		}
	}
	g.surface.pollInput()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	c := g.surface.background
	screen.Fill(colorValue(c))
	if g.DrawWorld != nil {
		g.DrawWorld(screen)
	}
	g.surface.drawProps(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.width, g.surface.height
}

// Run opens the window and blocks until the game loop exits.
func Run(surface *Surface, game *Game) error {
	ebiten.SetWindowSize(surface.width, surface.height)
	ebiten.SetWindowTitle(surface.title)
	return ebiten.RunGame(game)
}
