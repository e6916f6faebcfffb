package coinchange

import (
	"context"
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
	"time"

	apperrors "github.com/agbru/coincalc/internal/errors"
)

// blockingStrategy waits on release before answering.
type blockingStrategy struct {
	release chan struct{}
}

func (blockingStrategy) Name() string { return "blocking" }
func (blockingStrategy) Exact() bool  { return true }
func (s blockingStrategy) Solve(int, []int, *Stats) Result {
	<-s.release
	return Feasible(1)
}

// mutatingStrategy scribbles over the slice it receives.
type mutatingStrategy struct{}

func (mutatingStrategy) Name() string { return "mutating" }
func (mutatingStrategy) Exact() bool  { return false }
func (mutatingStrategy) Solve(_ int, coins []int, _ *Stats) Result {
	for i := range coins {
		coins[i] = -1
	}
	return Infeasible
}

// panickingStrategy fails the way an out-of-range table allocation does.
type panickingStrategy struct{}

func (panickingStrategy) Name() string { return "panicking" }
func (panickingStrategy) Exact() bool  { return true }
func (panickingStrategy) Solve(amount int, _ []int, _ *Stats) Result {
	_ = make([]Result, amount+1)
	return Infeasible
}

func TestStrategyCounter_Count(t *testing.T) {
	t.Parallel()
	c := NewCounter(MemoizedRecursive{})
	if c.Name() != "Memoized Recursion (top-down)" || !c.Exact() {
		t.Fatalf("unexpected metadata %q exact=%v", c.Name(), c.Exact())
	}
	r, st, err := c.Count(context.Background(), 11, []int{1, 5, 7})
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if r != Feasible(3) {
		t.Errorf("result = %v, want 3", r)
	}
	if st.Calls == 0 || st.TableSize != 11 {
		t.Errorf("stats = %+v", st)
	}
}

func TestStrategyCounter_InvalidInput(t *testing.T) {
	t.Parallel()
	c := NewCounter(BottomUp{})
	_, _, err := c.Count(context.Background(), 7, []int{0, 3})
	if !apperrors.IsInvalidArgument(err) {
		t.Errorf("error = %v, want invalid argument", err)
	}
}

func TestStrategyCounter_AlreadyCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewCounter(BottomUp{}).Count(ctx, 6, []int{1, 3, 4})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestStrategyCounter_StopsWaitingOnDeadline(t *testing.T) {
	t.Parallel()
	s := blockingStrategy{release: make(chan struct{})}
	defer close(s.release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := NewCounter(s).Count(ctx, 5, []int{1})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want deadline exceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Count returned after %v", elapsed)
	}
}

func TestStrategyCounter_IsolatesCallerSlice(t *testing.T) {
	t.Parallel()
	coins := []int{1, 2}
	if _, _, err := NewCounter(mutatingStrategy{}).Count(context.Background(), 3, coins); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(coins, []int{1, 2}) {
		t.Errorf("caller slice modified: %v", coins)
	}
}

func TestStrategyCounter_RecoversPanic(t *testing.T) {
	t.Parallel()
	r, _, err := NewCounter(panickingStrategy{}).Count(context.Background(), math.MaxInt, []int{1})

	var calcErr apperrors.CalculationError
	if !errors.As(err, &calcErr) {
		t.Fatalf("error = %v, want CalculationError", err)
	}
	if !strings.Contains(err.Error(), "panicking panicked") {
		t.Errorf("error = %q", err)
	}
	if r != Infeasible {
		t.Errorf("result = %v on error", r)
	}
}

func TestSolveWithStats_RecoversPanic(t *testing.T) {
	t.Parallel()
	_, _, err := SolveWithStats(panickingStrategy{}, math.MaxInt, []int{1})
	var calcErr apperrors.CalculationError
	if !errors.As(err, &calcErr) {
		t.Errorf("error = %v, want CalculationError", err)
	}
}

func TestStrategyCounter_AmountCeiling(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		strategy Strategy
		amount   int
		limit    int
	}{
		{"dp at max int", BottomUp{}, math.MaxInt, MaxTableAmount},
		{"dp above ceiling", BottomUp{}, MaxTableAmount + 1, MaxTableAmount},
		{"memo at max int", MemoizedRecursive{}, math.MaxInt, MaxMemoAmount},
		{"memo above ceiling", MemoizedRecursive{}, MaxMemoAmount + 1, MaxMemoAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, st, err := NewCounter(tt.strategy).Count(context.Background(), tt.amount, []int{1})
			var limitErr apperrors.LimitError
			if !errors.As(err, &limitErr) {
				t.Fatalf("error = %v, want LimitError", err)
			}
			if limitErr.Limit != tt.limit || limitErr.Amount != tt.amount {
				t.Errorf("LimitError = %+v", limitErr)
			}
			if r != Infeasible || st != (Stats{}) {
				t.Errorf("result = %v, stats = %+v on refusal", r, st)
			}
		})
	}
}
