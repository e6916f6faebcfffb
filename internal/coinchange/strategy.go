package coinchange

import (
	"fmt"

	apperrors "github.com/agbru/coincalc/internal/errors"
)

// Strategy is a coin-counting algorithm operating on validated input.
type Strategy interface {
	// Name returns a human-readable algorithm name.
	Name() string
	// Exact reports whether the strategy always returns the optimum.
	Exact() bool
	// Solve computes the count for amount. The caller must have validated
	// amount and coins; Solve must not modify coins. stats may be nil.
	Solve(amount int, coins []int, stats *Stats) Result
}

// Verify that the built-in strategies implement Strategy.
var (
	_ Strategy = Greedy{}
	_ Strategy = NaiveRecursive{}
	_ Strategy = MemoizedRecursive{}
	_ Strategy = BottomUp{}

	_ Bounded = BottomUp{}
	_ Bounded = MemoizedRecursive{}
)

// Bounded is implemented by strategies whose memory grows with the amount.
// Amounts above MaxAmount are refused with an apperrors.LimitError instead
// of exhausting memory or the goroutine stack.
type Bounded interface {
	MaxAmount() int
}

// CheckBounds returns a LimitError when s is Bounded and amount exceeds its
// ceiling.
func CheckBounds(s Strategy, amount int) error {
	b, ok := s.(Bounded)
	if !ok || amount <= b.MaxAmount() {
		return nil
	}
	return apperrors.LimitError{Operation: s.Name(), Amount: amount, Limit: b.MaxAmount()}
}

// run calls s.Solve and turns a panic into a CalculationError.
func run(s Strategy, amount int, coins []int, stats *Stats) (r Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			r = Infeasible
			err = apperrors.CalculationError{Cause: fmt.Errorf("%s panicked: %v", s.Name(), p)}
		}
	}()
	return s.Solve(amount, coins, stats), nil
}

// solve validates the input and runs s. No work happens on invalid input
// or on an amount above the strategy's ceiling.
func solve(s Strategy, amount int, coins []int, stats *Stats) (Result, error) {
	if err := Validate(amount, coins); err != nil {
		return Infeasible, err
	}
	if err := CheckBounds(s, amount); err != nil {
		return Infeasible, err
	}
	return run(s, amount, coins, stats)
}

// SolveWithStats validates the input, runs s and returns its work counters.
func SolveWithStats(s Strategy, amount int, coins []int) (Result, Stats, error) {
	var st Stats
	r, err := solve(s, amount, coins, &st)
	return r, st, err
}
