package components

import (
	"math"
	"testing"

	"github.com/lixenwraith/balloon-math/constants"
	"github.com/lixenwraith/balloon-math/problem"
)

func TestRollCategory(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want Category
	}{
		{"Zero", 0, CategoryNormal},
		{"Upper normal", 0.85, CategoryNormal},
		{"Star band", 0.87, CategoryStar},
		{"Freeze band", 0.91, CategoryFreeze},
		{"Bomb band", 0.95, CategoryBomb},
		{"Upper bomb", 0.97, CategoryBomb},
		{"Golden band", 0.99, CategoryGolden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RollCategory(tt.roll); got != tt.want {
				t.Errorf("RollCategory(%v) = %v, want %v", tt.roll, got, tt.want)
			}
		})
	}
}

// TestRollDistribution verifies golden is rarest and normal most common over a uniform sweep
func TestRollDistribution(t *testing.T) {
	counts := make(map[Category]int)
	const steps = 10000
	for i := 0; i < steps; i++ {
		counts[RollCategory(float64(i)/steps)]++
	}
	for _, c := range []Category{CategoryBomb, CategoryFreeze, CategoryStar, CategoryNormal} {
		if counts[CategoryGolden] >= counts[c] {
			t.Errorf("Golden (%d) not rarer than %v (%d)", counts[CategoryGolden], c, counts[c])
		}
		if c != CategoryNormal && counts[CategoryNormal] < counts[c] {
			t.Errorf("Normal (%d) less common than %v (%d)", counts[CategoryNormal], c, counts[c])
		}
	}
}

func TestEffectTable(t *testing.T) {
	if e := CategoryGolden.Effect(); e.Bonus != constants.GoldenBonus || e.Effect != EffectNone {
		t.Errorf("Unexpected golden effect %+v", e)
	}
	if e := CategoryBomb.Effect(); e.Effect != EffectPenalty || e.Bonus != 0 {
		t.Errorf("Unexpected bomb effect %+v", e)
	}
	if e := CategoryFreeze.Effect(); e.Effect != EffectFreeze || e.Duration != constants.FreezeDuration {
		t.Errorf("Unexpected freeze effect %+v", e)
	}
	if e := CategoryStar.Effect(); e.Effect != EffectMultiplier || e.Duration != constants.MultiplierDuration {
		t.Errorf("Unexpected star effect %+v", e)
	}
	if e := Category(42).Effect(); e != (CategoryEffect{}) {
		t.Errorf("Expected empty effect for unknown category, got %+v", e)
	}
	if CategoryBomb.Answerable() || !CategoryGolden.Answerable() {
		t.Error("Only bombs must be excluded from the option set")
	}
}

func TestBalloonAdvance(t *testing.T) {
	b := NewBalloon(10, -150, 0.5, CategoryNormal, problem.Problem{Question: "2 + 3", Answer: 5}, 0)
	if b.ID == "" {
		t.Fatal("Expected generated ID")
	}

	b.Advance(1)
	if b.Y != -149.5 {
		t.Errorf("Expected Y -149.5, got %v", b.Y)
	}
	b.Advance(constants.FreezeFactor)
	if !approx(b.Y, -149.3) {
		t.Errorf("Expected frozen step of 0.2, got Y %v", b.Y)
	}

	before := b.Y
	b.Advance(-1)
	if b.Y != before {
		t.Error("Negative scale must not move a balloon upward")
	}

	neg := NewBalloon(0, 0, -3, CategoryNormal, problem.Problem{}, 0)
	if neg.Speed != 0 {
		t.Errorf("Expected clamped speed 0, got %v", neg.Speed)
	}

	other := NewBalloon(0, 0, 1, CategoryNormal, problem.Problem{}, 0)
	if other.ID == b.ID {
		t.Error("Expected unique IDs")
	}
}

func TestBalloonAnswerable(t *testing.T) {
	b := NewBalloon(0, 0, 1, CategoryStar, problem.Problem{Answer: 4}, 1)
	if !b.Answerable() || !b.Live() {
		t.Error("Fresh star balloon must be answerable")
	}
	b.Popping = true
	if b.Answerable() || b.Live() {
		t.Error("Popping balloon must not be answerable")
	}
	bomb := NewBalloon(0, 0, 1, CategoryBomb, problem.Problem{Answer: 4}, 1)
	if bomb.Answerable() || !bomb.Live() {
		t.Error("Bomb is live but never answerable")
	}
}

func TestParticleStep(t *testing.T) {
	p := Particle{X: 0, Y: 0, VX: 1, VY: -2, Life: 1, Size: 6}
	alive := p.Step(0.2, 0.5, 0.5)
	if !alive || p.X != 1 || p.Y != -2 || !approx(p.VY, -1.8) || p.Size != 3 {
		t.Errorf("Unexpected particle after one step: %+v", p)
	}
	if p.Step(0.2, 0.5, 0.5) {
		t.Errorf("Expected particle dead at life %v", p.Life)
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
