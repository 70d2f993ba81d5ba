package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/render"
)

// LayoutFunc returns the current screen layout for mouse hit testing
type LayoutFunc func() render.Layout

// Handler turns terminal events into game actions and owns the level map cursor
type Handler struct {
	game   *engine.Game
	table  *KeyTable
	layout LayoutFunc
	cursor int

	lastState string
}

// NewHandler creates an input handler with the default key table
func NewHandler(game *engine.Game, layout LayoutFunc) *Handler {
	return &Handler{
		game:   game,
		table:  DefaultKeyTable(),
		layout: layout,
	}
}

// Cursor returns the highlighted level map index
func (h *Handler) Cursor() int { return h.cursor }

// Translate decodes a terminal event without applying it
func (h *Handler) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.table.Lookup(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return Intent{}
		}
		x, y := ev.Position()
		return Intent{Type: IntentMouseClick, X: x, Y: y}
	case *tcell.EventResize:
		w, hh := ev.Size()
		return Intent{Type: IntentResize, X: w, Y: hh}
	}
	return Intent{}
}

// HandleEvent applies a terminal event; returns false when the player asked to exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	return h.Apply(h.Translate(ev))
}

// Apply performs an intent against the game; returns false on quit
func (h *Handler) Apply(in Intent) bool {
	g := h.game
	switch in.Type {
	case IntentQuit:
		return false
	case IntentToggleMute:
		g.ToggleMute()
	case IntentConfirm:
		if g.State() == engine.StateLevelMap {
			h.selectCursor()
			return true
		}
		g.Confirm()
	case IntentHome:
		g.QuitHome()
	case IntentTogglePause:
		g.TogglePause()
	case IntentOpenMap:
		g.OpenMap()
	case IntentRetry:
		g.Retry()
	case IntentCursor:
		h.moveCursor(in.DX, in.DY)
	case IntentOption:
		g.SelectOption(in.Index)
	case IntentMouseClick:
		h.click(in.X, in.Y)
	}
	// Entering the map highlights the newest unlocked level
	if state := g.State(); state != h.lastState {
		if state == engine.StateLevelMap {
			h.resetCursor()
		}
		h.lastState = state
	}
	return true
}

// selectCursor starts the highlighted level
func (h *Handler) selectCursor() {
	levels := h.game.Catalog().All()
	if h.cursor < 0 || h.cursor >= len(levels) {
		return
	}
	h.game.SelectLevel(levels[h.cursor].ID)
}

func (h *Handler) moveCursor(dx, dy int) {
	if h.game.State() != engine.StateLevelMap {
		return
	}
	n := h.game.Catalog().Len()
	next := h.cursor + dx + dy*render.MapColumns()
	if next >= 0 && next < n {
		h.cursor = next
	}
}

// resetCursor points at the highest unlocked level
func (h *Handler) resetCursor() {
	levels := h.game.Catalog().All()
	h.cursor = 0
	for i := range levels {
		if h.game.Stats().Unlocked(levels[i].ID) {
			h.cursor = i
		}
	}
}

func (h *Handler) click(x, y int) {
	g := h.game
	l := h.layout()
	switch g.State() {
	case engine.StatePlaying:
		if s := g.Session(); s != nil {
			if i := l.OptionAt(x, y, len(s.Options)); i >= 0 {
				g.SelectOption(i)
			}
		}
	case engine.StateLevelMap:
		if i := l.LevelAt(x, y, g.Catalog().Len()); i >= 0 {
			h.cursor = i
			h.selectCursor()
		}
	default:
		g.Confirm()
	}
}
