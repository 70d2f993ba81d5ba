package components

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/balloon-math/problem"
)

// Balloon is a falling entity carrying one problem
// X and Speed are fixed at creation; Y only grows
type Balloon struct {
	ID       string
	X        float64
	Y        float64
	Category Category
	Problem  problem.Problem
	Speed    float64
	Color    int // Palette index
	Popping  bool
}

// NewBalloon creates a balloon with a fresh identifier
// Negative speeds are clamped to zero
func NewBalloon(x, y, speed float64, cat Category, p problem.Problem, color int) *Balloon {
	return &Balloon{
		ID:       uuid.NewString(),
		X:        x,
		Y:        y,
		Category: cat,
		Problem:  p,
		Speed:    max(speed, 0),
		Color:    color,
	}
}

// Advance moves the balloon down by its speed times scale
func (b *Balloon) Advance(scale float64) {
	if scale <= 0 {
		return
	}
	b.Y += b.Speed * scale
}

// Live reports whether the balloon can still be matched by an answer
func (b *Balloon) Live() bool {
	return !b.Popping
}

// Answerable reports whether the balloon contributes to the option set
func (b *Balloon) Answerable() bool {
	return !b.Popping && b.Category.Answerable()
}
