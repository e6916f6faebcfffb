package coinchange

// NaiveRecursive explores every denomination choice recursively without
// caching. Identical sub-amounts are recomputed on every path that reaches
// them, so running time grows exponentially with the amount.
type NaiveRecursive struct{}

// Name returns the display name.
func (NaiveRecursive) Name() string { return "Naive Recursion" }

// Exact reports true.
func (NaiveRecursive) Exact() bool { return true }

// Solve runs the uncached recursion on validated input.
func (NaiveRecursive) Solve(amount int, coins []int, stats *Stats) Result {
	s := naiveSolver{coins: coins, stats: stats}
	return s.solve(amount)
}

type naiveSolver struct {
	coins []int
	stats *Stats
}

func (s *naiveSolver) solve(x int) Result {
	s.stats.call()
	if x == 0 {
		return Feasible(0)
	}
	if x < 0 {
		return Infeasible
	}
	best := Infeasible
	for _, c := range s.coins {
		if sub := s.solve(x - c); sub.IsFeasible() {
			best = Min(best, sub.Plus(1))
		}
	}
	return best
}

// NaiveRecursiveCount returns the optimal coin count using plain recursion.
// It has no safeguard against deep recursion or long running times.
func NaiveRecursiveCount(amount int, coins []int) (Result, error) {
	return solve(NaiveRecursive{}, amount, coins, nil)
}
