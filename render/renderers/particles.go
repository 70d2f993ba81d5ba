package renderers

import (
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/render"
)

// ParticleRenderer draws pop debris fading into the background
type ParticleRenderer struct{}

// NewParticleRenderer creates the particle renderer
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// IsVisible limits particles to an active session
func (r *ParticleRenderer) IsVisible(ctx render.RenderContext) bool {
	return ctx.Playing()
}

// Render draws one glyph per live particle
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Layout
	for _, p := range ctx.Snapshot.Particles {
		if p.Life <= 0 {
			continue
		}
		x, y := l.Column(p.X), l.Row(p.Y)
		if y < l.FieldTop || y >= l.OptionTop {
			continue
		}
		glyph := '·'
		if p.Size > constants.ParticleSize*0.75 {
			glyph = '•'
		}
		bg := buf.Get(x, y).Bg
		buf.SetFgOnly(x, y, glyph, bg.Blend(render.PaletteColor(p.Color), p.Life), 0)
	}
}
