package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/render"
)

// Key hints shown under each screen
const (
	hintHome     = "enter: play   m: mute   ctrl+c: exit"
	hintMap      = "arrows: choose   enter: start   esc: home"
	hintPaused   = "space: resume   l: levels   esc: home"
	hintComplete = "enter: next level   l: levels   esc: home"
	hintGameOver = "r: retry   l: levels   esc: home"
	hintTrophy   = "enter: home"
)

// ScreenRenderer draws every non-playfield screen and the pause overlay
type ScreenRenderer struct{}

// NewScreenRenderer creates the screen renderer
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{}
}

// IsVisible hides the renderer only while actively playing
func (r *ScreenRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.State != engine.StatePlaying
}

// Render dispatches on the screen state
func (r *ScreenRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Snapshot
	switch s.State {
	case engine.StateSplash:
		r.splash(ctx, buf)
	case engine.StateHome:
		r.home(ctx, buf)
	case engine.StateLevelMap:
		r.levelMap(ctx, buf)
	case engine.StatePaused:
		r.panel(ctx, buf, "PAUSED", []string{s.LevelTitle, fmt.Sprintf("Score %d/%d", s.Score, s.Threshold)}, hintPaused)
	case engine.StateLevelComplete:
		r.panel(ctx, buf, "LEVEL COMPLETE!", []string{
			s.LevelTitle,
			fmt.Sprintf("Score %d   Best combo %d", s.Score, s.MaxCombo),
			"+3 ★",
		}, hintComplete)
	case engine.StateGameOver:
		r.panel(ctx, buf, "GAME OVER", []string{
			s.LevelTitle,
			fmt.Sprintf("Score %d   Best combo %d", s.Score, s.MaxCombo),
		}, hintGameOver)
	case engine.StateFinalTrophy:
		r.panel(ctx, buf, "🏆 CHAMPION 🏆", []string{
			"You beat all the levels!",
			fmt.Sprintf("Final score %d   Best combo %d", s.Score, s.MaxCombo),
		}, hintTrophy)
	}
}

func (r *ScreenRenderer) splash(ctx render.RenderContext, buf *render.RenderBuffer) {
	mid := ctx.Layout.Height / 2
	buf.TextCentered(mid-1, constants.TitleText, render.RgbHighlight, tcell.AttrBold)
	buf.TextCentered(mid+1, constants.TaglineText, render.RgbText, 0)
	if ctx.Snapshot.SplashReady {
		buf.TextCentered(mid+3, "press enter", render.RgbTextDim, 0)
	}
}

func (r *ScreenRenderer) home(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Snapshot
	mid := ctx.Layout.Height / 2
	buf.TextCentered(mid-3, constants.TitleText, render.RgbHighlight, tcell.AttrBold)
	buf.TextCentered(mid-1, fmt.Sprintf("★ %d   unlocked %d/%d", s.Stars, min(s.Unlocked, len(s.Levels)), len(s.Levels)), render.RgbText, 0)
	buf.TextCentered(mid+1, "Type or click the answer of a falling balloon before it lands.", render.RgbTextDim, 0)
	buf.TextCentered(mid+2, "Golden ◆ +50   Bomb ✖ costs a life   Freeze ❄ slows   Star ★ doubles", render.RgbTextDim, 0)
	sound := "sound on"
	if s.Muted {
		sound = "sound off"
	}
	buf.TextCentered(mid+4, sound, render.RgbTextDim, 0)
	buf.TextCentered(ctx.Layout.Height-1, hintHome, render.RgbTextDim, 0)
}

func (r *ScreenRenderer) levelMap(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Snapshot
	l := ctx.Layout
	buf.TextCentered(1, "CHOOSE A LEVEL", render.RgbHighlight, tcell.AttrBold)
	buf.TextCentered(2, fmt.Sprintf("★ %d", s.Stars), render.RgbText, 0)

	for i, lv := range s.Levels {
		x, y := l.LevelCell(i)
		fg, bg := render.RgbButtonText, render.RgbButtonBg
		label := fmt.Sprintf(" %2d ", lv.ID)
		if !lv.Unlocked {
			fg, bg = render.RgbTextDim, render.RgbLocked
			label = " ·· "
		}
		if i == ctx.Cursor {
			bg = render.RgbHighlight
			fg = render.RGBBlack
		}
		buf.Fill(x, y, 6, 1, bg)
		buf.Text(x+1, y, label, fg, tcell.AttrBold)
	}

	if ctx.Cursor >= 0 && ctx.Cursor < len(s.Levels) {
		lv := s.Levels[ctx.Cursor]
		_, y := l.LevelCell(len(s.Levels) - 1)
		buf.TextCentered(y+2, lv.Title, render.RgbText, tcell.AttrBold)
		buf.TextCentered(y+3, lv.Description, render.RgbTextDim, 0)
	}
	buf.TextCentered(l.Height-1, hintMap, render.RgbTextDim, 0)
}

// panel draws a centered box over whatever is below it
func (r *ScreenRenderer) panel(ctx render.RenderContext, buf *render.RenderBuffer, title string, lines []string, hint string) {
	l := ctx.Layout
	h := len(lines) + 6
	top := max((l.Height-h)/2, 0)
	buf.Fill(0, top, l.Width, h, render.RgbOverlayBg)

	buf.TextCentered(top+1, title, render.RgbHighlight, tcell.AttrBold)
	for i, line := range lines {
		buf.TextCentered(top+3+i, line, render.RgbText, 0)
	}
	buf.TextCentered(top+h-2, hint, render.RgbTextDim, 0)
}
