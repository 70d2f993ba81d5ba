package components

import (
	"time"

	"github.com/lixenwraith/balloon-math/constants"
)

// Category selects a balloon's visual style and its effect on pop
type Category int

const (
	CategoryNormal Category = iota
	CategoryGolden          // Flat bonus
	CategoryBomb            // Penalty on pop, never an answer option
	CategoryFreeze          // Slows all motion
	CategoryStar            // Temporary score multiplier
)

var categoryNames = [...]string{"normal", "golden", "bomb", "freeze", "star"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// EffectKind is the status effect a category applies on pop
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectFreeze
	EffectMultiplier
	EffectPenalty
)

// CategoryEffect is one row of the pop effect table
type CategoryEffect struct {
	Bonus    int
	Effect   EffectKind
	Duration time.Duration
}

// effectTable is indexed by Category; pop resolution consumes it without branching on category
var effectTable = [...]CategoryEffect{
	CategoryNormal: {},
	CategoryGolden: {Bonus: constants.GoldenBonus},
	CategoryBomb:   {Effect: EffectPenalty},
	CategoryFreeze: {Effect: EffectFreeze, Duration: constants.FreezeDuration},
	CategoryStar:   {Effect: EffectMultiplier, Duration: constants.MultiplierDuration},
}

// Effect returns the pop effect for the category
func (c Category) Effect() CategoryEffect {
	if c < 0 || int(c) >= len(effectTable) {
		return CategoryEffect{}
	}
	return effectTable[c]
}

// Answerable reports whether balloons of this category may appear in the option set
func (c Category) Answerable() bool {
	return c.Effect().Effect != EffectPenalty
}

// RollCategory maps a uniform [0,1) roll to a category, rarest band first
func RollCategory(roll float64) Category {
	switch {
	case roll > constants.CategoryGoldenRoll:
		return CategoryGolden
	case roll > constants.CategoryBombRoll:
		return CategoryBomb
	case roll > constants.CategoryFreezeRoll:
		return CategoryFreeze
	case roll > constants.CategoryStarRoll:
		return CategoryStar
	default:
		return CategoryNormal
	}
}
