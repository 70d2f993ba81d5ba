// Package problem generates the arithmetic problems carried by balloons
package problem

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Op is an arithmetic operation a level may draw from
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

// Operand caps that keep products and quotients manageable
const (
	mulLimit      = 12
	divisorLimit  = 10
	quotientLimit = 10
)

var opNames = [...]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
}

var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "×",
	OpDiv: "÷",
}

func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// Symbol returns the operator glyph used in question text
func (o Op) Symbol() string {
	if o < 0 || int(o) >= len(opSymbols) {
		return "?"
	}
	return opSymbols[o]
}

// ParseOp accepts both operator symbols (+ - * /) and names (add sub mul div)
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add":
		return OpAdd, nil
	case "-", "sub":
		return OpSub, nil
	case "*", "x", "×", "mul":
		return OpMul, nil
	case "/", "÷", "div":
		return OpDiv, nil
	}
	return 0, fmt.Errorf("unknown operation %q", s)
}

// Problem is an immutable question and its integer answer
type Problem struct {
	Question string
	Answer   int

	Op Op
	A  int
	B  int
}

// Generate draws one problem from ops over the inclusive range [lo, hi]
// An empty op set falls back to addition; callers are expected to supply at least one
func Generate(rng *rand.Rand, ops []Op, lo, hi int) Problem {
	if hi < lo {
		lo, hi = hi, lo
	}

	op := OpAdd
	if len(ops) > 0 {
		op = ops[rng.IntN(len(ops))]
	}

	a := between(rng, lo, hi)
	b := between(rng, lo, hi)

	var answer int
	switch op {
	case OpSub:
		// Non-negative results only
		if a < b {
			a, b = b, a
		}
		answer = a - b
	case OpMul:
		limit := max(min(hi, mulLimit), 1)
		a = between(rng, 1, limit)
		b = between(rng, 1, limit)
		answer = a * b
	case OpDiv:
		b = between(rng, 1, max(min(hi, divisorLimit), 1))
		answer = between(rng, 1, quotientLimit)
		a = answer * b
	default:
		op = OpAdd
		answer = a + b
	}

	return Problem{
		Question: fmt.Sprintf("%d %s %d", a, op.Symbol(), b),
		Answer:   answer,
		Op:       op,
		A:        a,
		B:        b,
	}
}

// between returns a uniform integer in the inclusive range [lo, hi]
func between(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
