// Package gui is the windowed frontend built on ebiten
package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/gui/layout"
)

// App adapts the game to ebiten's Update/Draw loop
type App struct {
	game   *engine.Game
	geo    layout.Geometry
	face   text.Face
	cursor int

	lastState string
}

// NewApp wraps a game for ebiten
func NewApp(game *engine.Game, field engine.Field) *App {
	return &App{
		game: game,
		geo:  layout.New(field),
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update handles input, then advances the game by one tick
func (a *App) Update() error {
	if quit := a.handleInput(); quit {
		return ebiten.Termination
	}
	a.game.Update()

	// Entering the map highlights the newest unlocked level
	if state := a.game.State(); state != a.lastState {
		if state == engine.StateLevelMap {
			a.resetCursor()
		}
		a.lastState = state
	}
	return nil
}

// Draw renders the current snapshot
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	a.draw(screen, &snap)
}

// Layout fixes the logical resolution; ebiten scales it to the window
func (a *App) Layout(_, _ int) (int, int) {
	return a.geo.Size()
}

// Run opens the window and blocks until it is closed
func Run(app *App, title string) error {
	w, h := app.geo.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(app)
}

func (a *App) resetCursor() {
	levels := a.game.Catalog().All()
	a.cursor = 0
	for i := range levels {
		if a.game.Stats().Unlocked(levels[i].ID) {
			a.cursor = i
		}
	}
}
