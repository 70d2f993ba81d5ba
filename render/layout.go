package render

import (
	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/engine"
)

const (
	hudRows    = constants.HUDHeight
	optionRows = constants.OptionButtonHeight

	// Level map grid
	mapColumns   = constants.LevelMapColumns
	mapCellWidth = 8
	mapTop       = 4
	mapRowStride = 2
)

// Layout maps the logical playfield and UI controls onto terminal cells
type Layout struct {
	Width, Height int
	Field         engine.Field

	// FieldTop and FieldRows bound the playfield rows
	FieldTop  int
	FieldRows int

	// OptionTop is the first row of the answer buttons
	OptionTop int
}

// NewLayout computes the layout for a screen size
func NewLayout(width, height int, field engine.Field) Layout {
	fieldRows := max(height-hudRows-optionRows, 1)
	return Layout{
		Width:     width,
		Height:    height,
		Field:     field,
		FieldTop:  hudRows,
		FieldRows: fieldRows,
		OptionTop: hudRows + fieldRows,
	}
}

// Column converts a logical x to a terminal column
func (l Layout) Column(x float64) int {
	if l.Field.Width <= 0 {
		return 0
	}
	return int(x / l.Field.Width * float64(l.Width))
}

// Row converts a logical y to a terminal row; negative results are above the field
func (l Layout) Row(y float64) int {
	if l.Field.Height <= 0 {
		return l.FieldTop
	}
	f := y / l.Field.Height * float64(l.FieldRows)
	if f < 0 {
		return l.FieldTop + int(f) - 1
	}
	return l.FieldTop + int(f)
}

// Span converts a logical width to a column count, at least one
func (l Layout) Span(w float64) int {
	return max(l.Column(w), 1)
}

// OptionBounds returns the column range [x0, x1) of answer button i out of n
func (l Layout) OptionBounds(i, n int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	return i * l.Width / n, (i + 1) * l.Width / n
}

// OptionAt returns the answer button under a cell, or -1
func (l Layout) OptionAt(x, y, n int) int {
	if y < l.OptionTop || y >= l.OptionTop+optionRows || x < 0 || x >= l.Width {
		return -1
	}
	for i := 0; i < n; i++ {
		if x0, x1 := l.OptionBounds(i, n); x >= x0 && x < x1 {
			return i
		}
	}
	return -1
}

// LevelCell returns the top-left cell of level map entry i
func (l Layout) LevelCell(i int) (int, int) {
	left := max((l.Width-mapColumns*mapCellWidth)/2, 0)
	return left + (i%mapColumns)*mapCellWidth, mapTop + (i/mapColumns)*mapRowStride
}

// LevelAt returns the level map entry under a cell, or -1
func (l Layout) LevelAt(x, y, n int) int {
	for i := 0; i < n; i++ {
		cx, cy := l.LevelCell(i)
		if y == cy && x >= cx && x < cx+mapCellWidth-1 {
			return i
		}
	}
	return -1
}

// MapColumns is the number of level map entries per row
func MapColumns() int { return mapColumns }
