package coinchange

// Stats counts the work done by one call. The fields are filled by the
// strategy that ran; a nil *Stats disables counting.
type Stats struct {
	// Calls is the number of recursive invocations (naive, memoized), the
	// number of denominations inspected (greedy), or the number of
	// (amount, denomination) pairs inspected (bottom-up).
	Calls uint64
	// CacheHits is the number of recursive invocations answered from the
	// memo cache.
	CacheHits uint64
	// TableSize is the number of subproblem slots allocated: M+1 for
	// bottom-up, the final cache size for memoized, 0 otherwise.
	TableSize int
}

func (s *Stats) call() {
	if s != nil {
		s.Calls++
	}
}

func (s *Stats) hit() {
	if s != nil {
		s.CacheHits++
	}
}

func (s *Stats) table(n int) {
	if s != nil {
		s.TableSize = n
	}
}
