package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
	"github.com/lixenwraith/balloon-math/gui/layout"
	"github.com/lixenwraith/balloon-math/render"
)

const lineHeight = 18

func rgba(c render.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

// label draws text with its top-left at x,y, or centered on x when center is set
func (a *App) label(dst *ebiten.Image, s string, x, y float64, c color.Color, center bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	if center {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(dst, s, a.face, op)
}

func (a *App) centered(dst *ebiten.Image, s string, y float64, c color.Color) {
	w, _ := a.geo.Size()
	a.label(dst, s, float64(w)/2, y, c, true)
}

func (a *App) draw(screen *ebiten.Image, snap *engine.Snapshot) {
	screen.Fill(rgba(render.RgbBackground))

	switch snap.State {
	case engine.StateSplash:
		a.drawSplash(screen, snap)
	case engine.StateHome:
		a.drawHome(screen, snap)
	case engine.StateLevelMap:
		a.drawMap(screen, snap)
	default:
		a.drawField(screen, snap)
		a.drawHUD(screen, snap)
		a.drawOptions(screen, snap)
		a.drawPanel(screen, snap)
	}
}

func (a *App) drawField(screen *ebiten.Image, snap *engine.Snapshot) {
	ox, oy := a.geo.FieldOrigin()
	if snap.Frozen {
		r := image.Rect(0, layout.HUDHeight, int(snap.Field.Width), a.geo.OptionsTop())
		fillRect(screen, r, color.NRGBA{R: 125, G: 211, B: 252, A: 40})
	}

	for i := range snap.Balloons {
		b := &snap.Balloons[i]
		body := rgba(render.BalloonColor(b.Category, b.Color))
		cx := float32(ox + b.X + constants.BalloonWidth/2)
		cy := float32(oy + b.Y + constants.BalloonHeight/2)
		if cy+constants.BalloonHeight/2 < float32(oy) {
			continue
		}
		if b.Popping {
			vector.StrokeCircle(screen, cx, cy, constants.BalloonWidth/2, 3, body, true)
			continue
		}
		vector.StrokeLine(screen, cx, cy+constants.BalloonHeight/2-10, cx, cy+constants.BalloonHeight/2+20, 1, rgba(render.RgbTextDim), true)
		vector.DrawFilledCircle(screen, cx, cy, constants.BalloonWidth/2, body, true)

		fg := color.Color(color.Black)
		if b.Category == components.CategoryBomb {
			fg = rgba(render.RgbBombFg)
		}
		if b.Category != components.CategoryNormal {
			a.label(screen, b.Category.String(), float64(cx), float64(cy)-lineHeight, fg, true)
		}
		a.label(screen, b.Problem.Question, float64(cx), float64(cy)-6, fg, true)
	}

	for _, p := range snap.Particles {
		pc := render.PaletteColor(p.Color)
		c := color.NRGBA{R: pc.R, G: pc.G, B: pc.B, A: uint8(max(min(p.Life, 1), 0) * 255)}
		vector.DrawFilledCircle(screen, float32(ox+p.X), float32(oy+p.Y), float32(p.Size/2), c, true)
	}

	// Bottom edge
	y := float32(a.geo.OptionsTop())
	vector.StrokeLine(screen, 0, y, float32(snap.Field.Width), y, 2, rgba(render.RgbLife), false)
}

func (a *App) drawHUD(screen *ebiten.Image, snap *engine.Snapshot) {
	fillRect(screen, image.Rect(0, 0, int(snap.Field.Width), layout.HUDHeight), rgba(render.RgbHUDBg))

	status := fmt.Sprintf("L%d  %d/%d  lives %d", snap.LevelID, snap.Score, snap.Threshold, snap.Lives)
	if snap.Combo > 1 {
		status += fmt.Sprintf("  combo x%d", snap.Combo)
	}
	a.label(screen, status, 8, 8, rgba(render.RgbText), false)

	extra := ""
	if snap.Multiplier > 1 {
		extra += fmt.Sprintf("x%d ", snap.Multiplier)
	}
	if snap.Frozen {
		extra += "FROZEN "
	}
	if snap.Timed {
		secs := int(snap.TimeLeft.Seconds())
		extra += fmt.Sprintf("%d:%02d ", secs/60, secs%60)
	}
	if snap.Muted {
		extra += "muted"
	}
	a.label(screen, extra, 8, 24, rgba(render.RgbHighlight), false)
}

func (a *App) drawOptions(screen *ebiten.Image, snap *engine.Snapshot) {
	for i, v := range snap.Options {
		r := a.geo.OptionRect(i, len(snap.Options))
		fillRect(screen, r, rgba(render.RgbButtonBg))
		cx := float64(r.Min.X+r.Max.X) / 2
		a.label(screen, fmt.Sprintf("%d", v), cx, float64(r.Min.Y+r.Dy()/2-6), rgba(render.RgbButtonText), true)
		a.label(screen, fmt.Sprintf("%d", i+1), float64(r.Min.X+4), float64(r.Min.Y+2), rgba(render.RgbTextDim), false)
	}
}

func (a *App) drawPanel(screen *ebiten.Image, snap *engine.Snapshot) {
	var title string
	var lines []string
	switch snap.State {
	case engine.StatePaused:
		title, lines = "PAUSED", []string{snap.LevelTitle, "space: resume  L: levels  esc: home"}
	case engine.StateLevelComplete:
		title, lines = "LEVEL COMPLETE!", []string{
			fmt.Sprintf("Score %d  Best combo %d  +3 stars", snap.Score, snap.MaxCombo),
			"enter: next  L: levels  esc: home",
		}
	case engine.StateGameOver:
		title, lines = "GAME OVER", []string{
			fmt.Sprintf("Score %d  Best combo %d", snap.Score, snap.MaxCombo),
			"R: retry  L: levels  esc: home",
		}
	case engine.StateFinalTrophy:
		title, lines = "CHAMPION!", []string{
			"You beat all the levels!",
			fmt.Sprintf("Final score %d", snap.Score),
			"enter: home",
		}
	default:
		return
	}

	w, h := a.geo.Size()
	top := h/2 - 60
	fillRect(screen, image.Rect(0, top, w, top+40+lineHeight*(len(lines)+1)), color.RGBA{R: 2, G: 6, B: 23, A: 220})
	a.centered(screen, title, float64(top+16), rgba(render.RgbHighlight))
	for i, line := range lines {
		a.centered(screen, line, float64(top+16+lineHeight*(i+2)), rgba(render.RgbText))
	}
}

func (a *App) drawSplash(screen *ebiten.Image, snap *engine.Snapshot) {
	_, h := a.geo.Size()
	a.centered(screen, constants.TitleText, float64(h/2-30), rgba(render.RgbHighlight))
	a.centered(screen, constants.TaglineText, float64(h/2), rgba(render.RgbText))
	if snap.SplashReady {
		a.centered(screen, "click or press enter", float64(h/2+30), rgba(render.RgbTextDim))
	}
}

func (a *App) drawHome(screen *ebiten.Image, snap *engine.Snapshot) {
	_, h := a.geo.Size()
	mid := float64(h / 2)
	a.centered(screen, constants.TitleText, mid-80, rgba(render.RgbHighlight))
	a.centered(screen, fmt.Sprintf("stars %d   unlocked %d/%d", snap.Stars, min(snap.Unlocked, len(snap.Levels)), len(snap.Levels)), mid-50, rgba(render.RgbText))
	a.centered(screen, "Answer a falling balloon before it lands.", mid-10, rgba(render.RgbTextDim))
	a.centered(screen, "golden +50  bomb -1 life  freeze slows  star x2", mid+10, rgba(render.RgbTextDim))
	sound := "sound on (M)"
	if snap.Muted {
		sound = "sound off (M)"
	}
	a.centered(screen, sound, mid+40, rgba(render.RgbTextDim))
	a.centered(screen, "click or press enter to play", mid+80, rgba(render.RgbText))
}

func (a *App) drawMap(screen *ebiten.Image, snap *engine.Snapshot) {
	a.centered(screen, "CHOOSE A LEVEL", 60, rgba(render.RgbHighlight))
	a.centered(screen, fmt.Sprintf("stars %d", snap.Stars), 90, rgba(render.RgbText))

	for i, lv := range snap.Levels {
		r := a.geo.LevelRect(i)
		bg, fg := render.RgbButtonBg, render.RgbButtonText
		label := fmt.Sprintf("%d", lv.ID)
		if !lv.Unlocked {
			bg, fg, label = render.RgbLocked, render.RgbTextDim, "--"
		}
		if i == a.cursor {
			bg, fg = render.RgbHighlight, render.RGBBlack
		}
		fillRect(screen, r, rgba(bg))
		a.label(screen, label, float64(r.Min.X+r.Max.X)/2, float64(r.Min.Y+r.Dy()/2-6), rgba(fg), true)
	}

	if a.cursor >= 0 && a.cursor < len(snap.Levels) {
		lv := snap.Levels[a.cursor]
		y := float64(a.geo.LevelRect(len(snap.Levels)-1).Max.Y + 30)
		a.centered(screen, lv.Title, y, rgba(render.RgbText))
		a.centered(screen, lv.Description, y+lineHeight, rgba(render.RgbTextDim))
	}
}
