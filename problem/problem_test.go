package problem

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// TestGenerateAddition verifies sums recompute from operands within range
func TestGenerateAddition(t *testing.T) {
	rng := newRand(1)
	for i := 0; i < 500; i++ {
		p := Generate(rng, []Op{OpAdd}, 5, 15)
		if p.Op != OpAdd {
			t.Fatalf("Expected addition, got %v", p.Op)
		}
		if p.A < 5 || p.A > 15 || p.B < 5 || p.B > 15 {
			t.Fatalf("Operands out of range: %d, %d", p.A, p.B)
		}
		if p.Answer != p.A+p.B {
			t.Fatalf("Expected %d + %d = %d, got %d", p.A, p.B, p.A+p.B, p.Answer)
		}
		if want := fmt.Sprintf("%d + %d", p.A, p.B); p.Question != want {
			t.Fatalf("Expected question %q, got %q", want, p.Question)
		}
	}
}

// TestGenerateSubtractionNonNegative verifies operands are ordered so results are never negative
func TestGenerateSubtractionNonNegative(t *testing.T) {
	rng := newRand(2)
	for i := 0; i < 500; i++ {
		p := Generate(rng, []Op{OpSub}, 1, 20)
		if p.A < p.B {
			t.Fatalf("Expected first operand >= second, got %d - %d", p.A, p.B)
		}
		if p.Answer < 0 {
			t.Fatalf("Negative subtraction result %d", p.Answer)
		}
		if p.Answer != p.A-p.B {
			t.Fatalf("Expected %d - %d = %d, got %d", p.A, p.B, p.A-p.B, p.Answer)
		}
	}
}

// TestGenerateMultiplicationLimit verifies operands are drawn from [1, min(hi, 12)]
func TestGenerateMultiplicationLimit(t *testing.T) {
	tests := []struct {
		lo, hi int
		limit  int
	}{
		{1, 5, 5},
		{2, 12, 12},
		{1, 50, 12},
		{30, 40, 12},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d-%d", tt.lo, tt.hi), func(t *testing.T) {
			rng := newRand(uint64(tt.hi))
			for i := 0; i < 300; i++ {
				p := Generate(rng, []Op{OpMul}, tt.lo, tt.hi)
				if p.A < 1 || p.A > tt.limit || p.B < 1 || p.B > tt.limit {
					t.Fatalf("Operands %d, %d outside [1, %d]", p.A, p.B, tt.limit)
				}
				if p.Answer != p.A*p.B {
					t.Fatalf("Expected product %d, got %d", p.A*p.B, p.Answer)
				}
			}
		})
	}
}

// TestGenerateDivisionExact verifies dividend = divisor * quotient with bounded factors
func TestGenerateDivisionExact(t *testing.T) {
	rng := newRand(4)
	for i := 0; i < 500; i++ {
		p := Generate(rng, []Op{OpDiv}, 1, 25)
		if p.B < 1 || p.B > 10 {
			t.Fatalf("Divisor %d outside [1, 10]", p.B)
		}
		if p.Answer < 1 || p.Answer > 10 {
			t.Fatalf("Quotient %d outside [1, 10]", p.Answer)
		}
		if p.A != p.B*p.Answer {
			t.Fatalf("Expected dividend %d, got %d", p.B*p.Answer, p.A)
		}
	}
}

// TestGenerateOperationCoverage verifies every operation in the set is eventually drawn
func TestGenerateOperationCoverage(t *testing.T) {
	rng := newRand(5)
	ops := []Op{OpAdd, OpSub, OpMul, OpDiv}
	seen := make(map[Op]int)
	for i := 0; i < 1000; i++ {
		seen[Generate(rng, ops, 1, 12).Op]++
	}
	for _, op := range ops {
		if seen[op] == 0 {
			t.Errorf("Operation %v never drawn", op)
		}
	}
}

// TestGenerateEmptyOpsFallsBack verifies the guarded precondition does not panic
func TestGenerateEmptyOpsFallsBack(t *testing.T) {
	p := Generate(newRand(6), nil, 1, 5)
	if p.Op != OpAdd || p.Answer != p.A+p.B {
		t.Errorf("Expected addition fallback, got %+v", p)
	}
}

// TestGenerateDegenerateRange verifies lo == hi and swapped bounds
func TestGenerateDegenerateRange(t *testing.T) {
	rng := newRand(7)
	p := Generate(rng, []Op{OpAdd}, 3, 3)
	if p.Answer != 6 {
		t.Errorf("Expected 3 + 3 = 6, got %d", p.Answer)
	}

	p = Generate(rng, []Op{OpAdd}, 9, 4)
	if p.A < 4 || p.A > 9 || p.B < 4 || p.B > 9 {
		t.Errorf("Swapped range produced operands %d, %d", p.A, p.B)
	}
}

// TestParseOp verifies symbol and name parsing
func TestParseOp(t *testing.T) {
	tests := []struct {
		in      string
		want    Op
		wantErr bool
	}{
		{"+", OpAdd, false},
		{"add", OpAdd, false},
		{"-", OpSub, false},
		{" SUB ", OpSub, false},
		{"*", OpMul, false},
		{"×", OpMul, false},
		{"/", OpDiv, false},
		{"div", OpDiv, false},
		{"%", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseOp(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOp(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseOp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
