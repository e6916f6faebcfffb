package coinchange

import "strconv"

// Result is the outcome of a count: either Feasible(n) or Infeasible.
//
// The zero value is Infeasible, so a freshly allocated []Result is a table of
// unsolved amounts.
type Result struct {
	count    int
	feasible bool
}

// Infeasible means no combination of the denominations sums to the amount.
var Infeasible = Result{}

// Feasible returns a result holding count coins. count must be non-negative.
func Feasible(count int) Result {
	return Result{count: count, feasible: true}
}

// IsFeasible reports whether r holds a coin count.
func (r Result) IsFeasible() bool { return r.feasible }

// Count returns the coin count and whether r is feasible.
func (r Result) Count() (int, bool) { return r.count, r.feasible }

// Int returns the coin count, or -1 when r is Infeasible.
func (r Result) Int() int {
	if !r.feasible {
		return -1
	}
	return r.count
}

// Plus adds k coins to a feasible result. Infeasible is returned unchanged.
func (r Result) Plus(k int) Result {
	if !r.feasible {
		return r
	}
	return Feasible(r.count + k)
}

// Compare returns -1, 0 or +1 depending on whether r is better than, equal to
// or worse than o. Fewer coins is better and Infeasible is worse than any
// feasible result.
func (r Result) Compare(o Result) int {
	switch {
	case r.feasible && !o.feasible:
		return -1
	case !r.feasible && o.feasible:
		return 1
	case !r.feasible && !o.feasible:
		return 0
	case r.count < o.count:
		return -1
	case r.count > o.count:
		return 1
	default:
		return 0
	}
}

// Less reports whether r is strictly better than o.
func (r Result) Less(o Result) bool { return r.Compare(o) < 0 }

// Min returns the better of a and b.
func Min(a, b Result) Result {
	if b.Less(a) {
		return b
	}
	return a
}

// String returns the decimal count or "infeasible".
func (r Result) String() string {
	if !r.feasible {
		return "infeasible"
	}
	return strconv.Itoa(r.count)
}
