package coinchange

// BottomUp fills a table of minimum counts for every amount from 0 to M in
// ascending order.
type BottomUp struct{}

// Name returns the display name.
func (BottomUp) Name() string { return "Bottom-Up DP" }

// Exact reports true.
func (BottomUp) Exact() bool { return true }

// Solve fills the table on validated input.
//
// table[i] is final once the inner loop over denominations has finished for
// i; later iterations only read it.
func (BottomUp) Solve(amount int, coins []int, stats *Stats) Result {
	table := make([]Result, amount+1)
	table[0] = Feasible(0)
	stats.table(len(table))

	for i := 1; i <= amount; i++ {
		for _, c := range coins {
			stats.call()
			if c <= i && table[i-c].IsFeasible() {
				table[i] = Min(table[i], table[i-c].Plus(1))
			}
		}
	}
	return table[amount]
}

// BottomUpCount returns the optimal coin count using bottom-up dynamic
// programming.
func BottomUpCount(amount int, coins []int) (Result, error) {
	return solve(BottomUp{}, amount, coins, nil)
}

// MaxTableAmount caps the bottom-up table at 10 million slots.
const MaxTableAmount = 10_000_000

// MaxAmount implements Bounded.
func (BottomUp) MaxAmount() int { return MaxTableAmount }
