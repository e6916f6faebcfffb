// Command generate-golden writes the golden cases used by the coinchange
// tests. Expected values come from a breadth-first search over amounts,
// which shares no code with the counters under test.
package main

import (
	"cmp"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

type goldenCase struct {
	Name    string `json:"name"`
	Amount  int    `json:"amount"`
	Coins   []int  `json:"coins"`
	Optimal int    `json:"optimal"`
	Greedy  int    `json:"greedy"`
}

var inputs = []struct {
	name   string
	amount int
	coins  []int
}{
	{"greedy overshoots", 6, []int{1, 3, 4}},
	{"several paths", 11, []int{1, 5, 7}},
	{"odd amount even coins", 23, []int{2, 4, 6}},
	{"zero amount", 0, []int{1, 2, 5}},
	{"greedy dead end", 6, []int{4, 3}},
	{"all even unreachable", 7, []int{2, 4}},
	{"us coins", 30, []int{1, 10, 25}},
	{"us coins canonical", 63, []int{1, 5, 10, 25}},
	{"no unit coin", 100, []int{3, 7, 11}},
	{"non canonical", 12, []int{1, 6, 9}},
	{"greedy stuck at one", 15, []int{2, 5, 7}},
	{"twenty five trap", 40, []int{1, 5, 10, 20, 25}},
	{"primes", 250, []int{7, 13, 29}},
	{"large canonical", 1000, []int{1, 5, 10, 25, 50, 100}},
	{"single unusable", 17, []int{5}},
	{"descending input", 24, []int{7, 5, 2}},
}

// oracleMinCoins returns the fewest coins summing to amount, or -1. Each
// amount is reached first along a shortest path.
func oracleMinCoins(amount int, coins []int) int {
	dist := make([]int, amount+1)
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0
	queue := []int{0}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		for _, c := range coins {
			y := x + c
			if y <= amount && dist[y] < 0 {
				dist[y] = dist[x] + 1
				queue = append(queue, y)
			}
		}
	}
	return dist[amount]
}

// oracleGreedy repeatedly subtracts the largest coin that fits.
func oracleGreedy(amount int, coins []int) int {
	sorted := slices.SortedFunc(slices.Values(coins), func(a, b int) int { return cmp.Compare(b, a) })
	n := 0
	for amount > 0 {
		i := slices.IndexFunc(sorted, func(c int) bool { return c <= amount })
		if i < 0 {
			return -1
		}
		amount -= sorted[i]
		n++
	}
	return n
}

func buildCases() []goldenCase {
	cases := make([]goldenCase, 0, len(inputs))
	for _, in := range inputs {
		cases = append(cases, goldenCase{
			Name:    in.name,
			Amount:  in.amount,
			Coins:   in.coins,
			Optimal: oracleMinCoins(in.amount, in.coins),
			Greedy:  oracleGreedy(in.amount, in.coins),
		})
	}
	return cases
}

func main() {
	out := flag.String("out", filepath.Join("internal", "coinchange", "testdata", "coinchange_golden.json"), "output file")
	flag.Parse()

	data, err := json.MarshalIndent(buildCases(), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, append(data, '\n'), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d cases to %s\n", len(inputs), *out)
}
