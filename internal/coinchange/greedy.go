package coinchange

import (
	"cmp"
	"slices"
)

// Greedy takes as many of the largest usable denomination as possible, then
// moves to the next one. It is exact only for canonical coin systems.
type Greedy struct{}

// Name returns the display name.
func (Greedy) Name() string { return "Greedy (largest coin first)" }

// Exact reports false: greedy may miss the optimum.
func (Greedy) Exact() bool { return false }

// Solve runs the greedy pass on validated input.
func (Greedy) Solve(amount int, coins []int, stats *Stats) Result {
	if amount == 0 {
		return Feasible(0)
	}

	sorted := slices.Clone(coins)
	slices.SortFunc(sorted, func(a, b int) int { return cmp.Compare(b, a) })

	remaining, total := amount, 0
	for _, c := range sorted {
		stats.call()
		if c <= remaining {
			q := remaining / c
			total += q
			remaining -= q * c
		}
		if remaining == 0 {
			return Feasible(total)
		}
	}
	return Infeasible
}

// GreedyCount returns the coin count found by the greedy strategy, which can
// exceed the optimum or be Infeasible on non-canonical denomination sets.
func GreedyCount(amount int, coins []int) (Result, error) {
	return solve(Greedy{}, amount, coins, nil)
}
