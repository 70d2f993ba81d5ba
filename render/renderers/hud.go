package renderers

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/render"
)

// HUDRenderer draws the status line: level, score, lives, combo and active effects
type HUDRenderer struct{}

// NewHUDRenderer creates the status line renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// IsVisible shows the status line whenever a session exists
func (r *HUDRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Snapshot.HasSession()
}

// Render draws the status line on the top row
func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Snapshot
	buf.Fill(0, 0, ctx.Layout.Width, 1, render.RgbHUDBg)

	x := 1
	x += buf.Text(x, 0, fmt.Sprintf("L%d ", s.LevelID), render.RgbHighlight, tcell.AttrBold)
	x += buf.Text(x, 0, fmt.Sprintf("%d/%d ", s.Score, s.Threshold), render.RgbText, 0)

	hearts := strings.Repeat("♥", s.Lives) + strings.Repeat("♡", max(constants.StartingLives-s.Lives, 0))
	x += buf.Text(x, 0, hearts+" ", render.RgbLife, 0)

	if s.Combo > 1 {
		x += buf.Text(x, 0, fmt.Sprintf("combo x%d ", s.Combo), render.RgbText, 0)
	}
	if s.Multiplier > 1 {
		x += buf.Text(x, 0, fmt.Sprintf("×%d ", s.Multiplier), render.RgbStar, tcell.AttrBold)
	}
	if s.Frozen {
		x += buf.Text(x, 0, "❄ ", render.RgbFreeze, 0)
	}
	if s.Timed {
		secs := int(s.TimeLeft.Seconds())
		x += buf.Text(x, 0, fmt.Sprintf("%d:%02d ", secs/60, secs%60), render.RgbHighlight, 0)
	}
	if s.Muted {
		buf.Text(x, 0, "muted", render.RgbTextDim, 0)
	}
}
