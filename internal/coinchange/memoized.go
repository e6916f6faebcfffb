package coinchange

// MemoizedRecursive is NaiveRecursive with a cache keyed by the remaining
// amount. Each distinct amount is solved at most once per call.
type MemoizedRecursive struct{}

// Name returns the display name.
func (MemoizedRecursive) Name() string { return "Memoized Recursion (top-down)" }

// Exact reports true.
func (MemoizedRecursive) Exact() bool { return true }

// Solve runs the cached recursion on validated input. The cache lives only
// for this call.
func (MemoizedRecursive) Solve(amount int, coins []int, stats *Stats) Result {
	s := memoSolver{
		coins: coins,
		cache: make(map[int]Result),
		stats: stats,
	}
	r := s.solve(amount)
	stats.table(len(s.cache))
	return r
}

type memoSolver struct {
	coins []int
	cache map[int]Result
	stats *Stats
}

func (s *memoSolver) solve(x int) Result {
	s.stats.call()
	if x == 0 {
		return Feasible(0)
	}
	if x < 0 {
		return Infeasible
	}
	if r, ok := s.cache[x]; ok {
		s.stats.hit()
		return r
	}
	best := Infeasible
	for _, c := range s.coins {
		if sub := s.solve(x - c); sub.IsFeasible() {
			best = Min(best, sub.Plus(1))
		}
	}
	s.cache[x] = best
	return best
}

// MemoizedRecursiveCount returns the optimal coin count using top-down
// recursion with memoization. It always agrees with NaiveRecursiveCount.
func MemoizedRecursiveCount(amount int, coins []int) (Result, error) {
	return solve(MemoizedRecursive{}, amount, coins, nil)
}

// MaxMemoAmount caps the memoized recursion. With a coin of 1 the recursion
// depth equals the amount.
const MaxMemoAmount = 1_000_000

// MaxAmount implements Bounded.
func (MemoizedRecursive) MaxAmount() int { return MaxMemoAmount }
