package orchestration

import (
	"github.com/agbru/coincalc/internal/coinchange"
)

// SelectedCounter pairs a counter with its registry key.
type SelectedCounter struct {
	Key     string
	Counter coinchange.Counter
}

// AlgoAll selects every registered counter.
const AlgoAll = "all"

// GetCountersToRun determines which counters should be executed for the given
// algorithm selection. "all" returns every registered counter in sorted key
// order; an unknown key returns nil.
func GetCountersToRun(algo string, factory coinchange.CounterFactory) []SelectedCounter {
	if algo == AlgoAll {
		keys := factory.List()
		selected := make([]SelectedCounter, 0, len(keys))
		for _, k := range keys {
			if c, err := factory.Get(k); err == nil {
				selected = append(selected, SelectedCounter{Key: k, Counter: c})
			}
		}
		return selected
	}
	if c, err := factory.Get(algo); err == nil {
		return []SelectedCounter{{Key: algo, Counter: c}}
	}
	return nil
}

// SelectCounters returns the counters registered under keys, in the order
// given. Unknown keys are skipped.
func SelectCounters(keys []string, factory coinchange.CounterFactory) []SelectedCounter {
	selected := make([]SelectedCounter, 0, len(keys))
	for _, k := range keys {
		if c, err := factory.Get(k); err == nil {
			selected = append(selected, SelectedCounter{Key: k, Counter: c})
		}
	}
	return selected
}
