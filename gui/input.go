package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/gui/layout"
)

var optionKeys = [constants.OptionCount]ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6,
}

var optionPadKeys = [constants.OptionCount]ebiten.Key{
	ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6,
}

// handleInput applies this frame's key and mouse presses; returns true on quit
func (a *App) handleInput() bool {
	g := a.game

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		return true
	}

	for i := range optionKeys {
		if inpututil.IsKeyJustPressed(optionKeys[i]) || inpututil.IsKeyJustPressed(optionPadKeys[i]) {
			g.SelectOption(i)
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		a.confirm()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.QuitHome()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyL):
		g.OpenMap()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.Retry()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		a.moveCursor(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		a.moveCursor(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		a.moveCursor(-layout.MapColumns)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		a.moveCursor(layout.MapColumns)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		a.click(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		a.click(ebiten.TouchPosition(id))
	}
	return false
}

func (a *App) confirm() {
	if a.game.State() == engine.StateLevelMap {
		a.selectCursor()
		return
	}
	a.game.Confirm()
}

func (a *App) selectCursor() {
	levels := a.game.Catalog().All()
	if a.cursor >= 0 && a.cursor < len(levels) {
		a.game.SelectLevel(levels[a.cursor].ID)
	}
}

func (a *App) moveCursor(d int) {
	if a.game.State() != engine.StateLevelMap {
		return
	}
	if next := a.cursor + d; next >= 0 && next < a.game.Catalog().Len() {
		a.cursor = next
	}
}

func (a *App) click(x, y int) {
	g := a.game
	switch g.State() {
	case engine.StatePlaying:
		if s := g.Session(); s != nil {
			if i := a.geo.OptionAt(x, y, len(s.Options)); i >= 0 {
				g.SelectOption(i)
			}
		}
	case engine.StateLevelMap:
		if i := a.geo.LevelAt(x, y, g.Catalog().Len()); i >= 0 {
			a.cursor = i
			a.selectCursor()
		}
	default:
		g.Confirm()
	}
}
