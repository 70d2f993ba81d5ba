package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// RenderBuffer is a compositor of cells flushed to a tcell screen once per frame
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Fg: RgbText, Bg: RgbBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns the buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y; out of bounds yields the zero cell
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set composites a cell; a zero rune keeps the existing glyph
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, mode BlendMode, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	if r != 0 {
		dst.Rune = r
		dst.Fg = blend(dst.Fg, fg, mode, alpha)
	}
	dst.Bg = blend(dst.Bg, bg, mode, alpha)
}

// SetWithBg writes an opaque cell
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// SetFgOnly writes rune and foreground while preserving the background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background while preserving rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// Fill paints a rectangle background
func (b *RenderBuffer) Fill(x, y, w, h int, bg RGB) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.SetWithBg(col, row, ' ', bg, bg)
		}
	}
}

// Text writes a string over the existing background and returns the columns used
// Wide runes take two cells
func (b *RenderBuffer) Text(x, y int, s string, fg RGB, attrs tcell.AttrMask) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.SetFgOnly(col, y, r, fg, attrs)
		for i := 1; i < w; i++ {
			b.SetFgOnly(col+i, y, 0, fg, attrs)
		}
		col += w
	}
	return col - x
}

// TextCentered writes s centered on row y
func (b *RenderBuffer) TextCentered(y int, s string, fg RGB, attrs tcell.AttrMask) {
	x := (b.width - runewidth.StringWidth(s)) / 2
	b.Text(max(x, 0), y, s, fg, attrs)
}

// FlushToScreen writes the buffer to the screen
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Rune == 0 {
				// Continuation of a wide rune
				continue
			}
			style := tcell.StyleDefault.Foreground(c.Fg.TCell()).Background(c.Bg.TCell()).Attributes(c.Attrs)
			screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}
