package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/balloon-math/components"
	"github.com/lixenwraith/balloon-math/constants"
)

// BuildOptions derives the answer buttons from the active balloons
//
// Every distinct answer of a non-popping, non-bomb balloon is included while capacity allows;
// past capacity the lowest balloons (closest to being missed) win. The set is padded with
// decoys from [0, max(2*high, largest answer) + DecoySlack) until OptionCount values exist or
// OptionRetryCap draws are spent, then sorted ascending.
func BuildOptions(balloons []*components.Balloon, high int, rng *rand.Rand) []int {
	live := make([]*components.Balloon, 0, len(balloons))
	for _, b := range balloons {
		if b.Answerable() {
			live = append(live, b)
		}
	}
	slices.SortStableFunc(live, func(a, b *components.Balloon) int {
		switch {
		case a.Y > b.Y:
			return -1
		case a.Y < b.Y:
			return 1
		}
		return 0
	})

	options := make([]int, 0, constants.OptionCount)
	seen := make(map[int]bool, constants.OptionCount)
	largest := 0
	for _, b := range live {
		if len(options) == constants.OptionCount {
			break
		}
		v := b.Problem.Answer
		if seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
		largest = max(largest, v)
	}

	bound := max(2*high, largest) + constants.DecoySlack
	for tries := 0; len(options) < constants.OptionCount && tries < constants.OptionRetryCap; tries++ {
		v := rng.IntN(bound)
		if seen[v] {
			continue
		}
		seen[v] = true
		options = append(options, v)
	}

	slices.Sort(options)
	return options
}
