package renderers

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/balloon-math/render"
)

// OptionsRenderer draws the answer buttons along the bottom
type OptionsRenderer struct{}

// NewOptionsRenderer creates the answer button renderer
func NewOptionsRenderer() *OptionsRenderer {
	return &OptionsRenderer{}
}

// IsVisible limits buttons to an active session
func (r *OptionsRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render draws one framed button per option, labelled with its hotkey
func (r *OptionsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	opts := ctx.Snapshot.Options
	buf.Fill(0, l.OptionTop, l.Width, l.Height-l.OptionTop, render.RgbHUDBg)

	for i, v := range opts {
		x0, x1 := l.OptionBounds(i, len(opts))
		w := x1 - x0 - 1
		if w <= 0 {
			continue
		}
		buf.Fill(x0, l.OptionTop+1, w, 1, render.RgbButtonBg)
		label := fmt.Sprintf("%d", v)
		lx := x0 + (w-runewidth.StringWidth(label))/2
		buf.Text(lx, l.OptionTop+1, label, render.RgbButtonText, tcell.AttrBold)
		buf.Text(x0, l.OptionTop, fmt.Sprintf("%d", i+1), render.RgbTextDim, 0)
	}
}
