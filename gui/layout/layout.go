// Package layout holds the pixel geometry of the windowed frontend
package layout

import (
	"image"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
)

// Window chrome in pixels
const (
	HUDHeight    = 40
	OptionHeight = 80
	OptionGap    = 8

	MapColumns = constants.LevelMapColumns
	MapCell    = 64
	MapGap     = 12
	MapTop     = 140
)

// Geometry maps the logical playfield and controls onto the window
type Geometry struct {
	Field engine.Field
}

// New returns the geometry for a playfield
func New(field engine.Field) Geometry {
	return Geometry{Field: field}
}

// Size returns the logical window size
func (g Geometry) Size() (int, int) {
	return int(g.Field.Width), HUDHeight + int(g.Field.Height) + OptionHeight
}

// FieldOrigin returns the top-left of the playfield
func (g Geometry) FieldOrigin() (float64, float64) {
	return 0, HUDHeight
}

// OptionsTop returns the y of the answer button strip
func (g Geometry) OptionsTop() int {
	return HUDHeight + int(g.Field.Height)
}

// OptionRect returns the bounds of answer button i out of n
func (g Geometry) OptionRect(i, n int) image.Rectangle {
	if n <= 0 {
		return image.Rectangle{}
	}
	w := int(g.Field.Width)
	x0 := i*w/n + OptionGap/2
	x1 := (i+1)*w/n - OptionGap/2
	top := g.OptionsTop() + OptionGap
	return image.Rect(x0, top, x1, top+OptionHeight-2*OptionGap)
}

// OptionAt returns the answer button under a point, or -1
func (g Geometry) OptionAt(x, y, n int) int {
	p := image.Pt(x, y)
	for i := 0; i < n; i++ {
		if p.In(g.OptionRect(i, n)) {
			return i
		}
	}
	return -1
}

// LevelRect returns the bounds of level map entry i
func (g Geometry) LevelRect(i int) image.Rectangle {
	gridW := MapColumns*MapCell + (MapColumns-1)*MapGap
	left := (int(g.Field.Width) - gridW) / 2
	x := left + (i%MapColumns)*(MapCell+MapGap)
	y := MapTop + (i/MapColumns)*(MapCell+MapGap)
	return image.Rect(x, y, x+MapCell, y+MapCell)
}

// LevelAt returns the level map entry under a point, or -1
func (g Geometry) LevelAt(x, y, n int) int {
	p := image.Pt(x, y)
	for i := 0; i < n; i++ {
		if p.In(g.LevelRect(i)) {
			return i
		}
	}
	return -1
}
