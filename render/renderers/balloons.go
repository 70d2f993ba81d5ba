package renderers

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/render"
)

// BalloonRenderer draws each balloon as a colored label with a string below it
type BalloonRenderer struct{}

// NewBalloonRenderer creates the balloon renderer
func NewBalloonRenderer() *BalloonRenderer {
	return &BalloonRenderer{}
}

// IsVisible limits balloons to an active session
func (r *BalloonRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render draws balloons clipped to the field rows
func (r *BalloonRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range ctx.Snapshot.Balloons {
		r.draw(ctx.Layout, buf, &ctx.Snapshot.Balloons[i])
	}
}

// Label returns the text shown on a balloon
func Label(b *components.Balloon) string {
	if g := render.CategoryGlyph(b.Category); g != 0 {
		return string(g) + " " + b.Problem.Question
	}
	return b.Problem.Question
}

func (r *BalloonRenderer) draw(l render.Layout, buf *render.RenderBuffer, b *components.Balloon) {
	label := " " + Label(b) + " "
	width := max(l.Span(constants.BalloonWidth), runewidth.StringWidth(label))
	x := max(min(l.Column(b.X), l.Width-width), 0)
	y := l.Row(b.Y)
	bottom := l.OptionTop

	visible := func(row int) bool { return row >= l.FieldTop && row < bottom }

	body := render.BalloonColor(b.Category, b.Color)
	fg := render.RGBBlack
	if b.Category == components.CategoryBomb {
		fg = render.RgbBombFg
	}

	if b.Popping {
		// Burst marker until the balloon is removed
		if visible(y) {
			buf.Text(x+width/2-1, y, "✺✺✺", body, tcell.AttrBold)
		}
		return
	}

	if visible(y) {
		for col := x; col < x+width; col++ {
			buf.SetWithBg(col, y, ' ', fg, body)
		}
		buf.Text(x+(width-runewidth.StringWidth(label))/2, y, label, fg, tcell.AttrBold)
	}
	if visible(y + 1) {
		buf.SetFgOnly(x+width/2, y+1, '╿', render.RgbTextDim, 0)
	}
}
