// Package coinchange computes the minimum number of coins, drawn from an
// unlimited supply of each denomination, that sum exactly to a target amount.
//
// Four strategies are provided so their costs and answers can be compared:
//
//   - Greedy: sort the denominations descending and take as many of each as
//     fit, using integer division rather than repeated subtraction.
//     Time O(k log k), space O(k). Optimal only for canonical coin systems;
//     on other sets it may overshoot the optimum or report Infeasible even
//     when a combination exists. That behavior is part of the contract.
//   - NaiveRecursive: try every denomination at every level with no caching.
//     Time exponential in the worst case (roughly O(k^M)), space O(M) stack.
//     There is no internal limit; callers bound it from outside.
//   - MemoizedRecursive: the same recursion with a per-call cache keyed by
//     remaining amount. Time Θ(M·k), space O(M) cache plus O(M) stack.
//   - BottomUp: fill table[0..M] in ascending order with
//     table[i] = min(table[i], table[i-c] + 1). Time Θ(M·k), space O(M).
//
// where M is the amount and k the number of denominations.
//
// Results are reported as a Result, a tagged value that is either Feasible
// with a non-negative count or Infeasible. Infeasible orders after every
// feasible count and absorbs addition, so it can seed min-reductions without
// floating-point infinities.
//
// Every entry point validates its input first and fails with an error
// satisfying errors.Is(err, apperrors.ErrInvalidArgument) when the amount is
// negative, the denomination list is empty, or a denomination is not
// positive. Infeasibility is a normal result, never an error.
//
// The package keeps no mutable state between calls: each memoized call owns
// a fresh cache and each bottom-up call a fresh table, so calls may run
// concurrently without synchronization.
package coinchange
