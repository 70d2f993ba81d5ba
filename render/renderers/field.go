package renderers

import (
	"github.com/lixenwraith/balloon-math/render"
)

// FieldRenderer paints the playfield backdrop; frozen fields get an icy tint
type FieldRenderer struct{}

// NewFieldRenderer creates the backdrop renderer
func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{}
}

// IsVisible limits the backdrop to an active session
func (r *FieldRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render fills the field rows
func (r *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	bg := render.RgbBackground
	if ctx.Snapshot.Frozen {
		bg = bg.Blend(render.RgbFreeze, 0.15)
	}
	buf.Fill(0, l.FieldTop, l.Width, l.FieldRows, bg)

	// Danger line at the bottom edge
	for x := 0; x < l.Width; x++ {
		buf.SetFgOnly(x, l.OptionTop-1, '─', render.RgbLife.Blend(bg, 0.5), 0)
	}
}
