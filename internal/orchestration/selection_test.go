package orchestration

import (
	"testing"

	"github.com/agbru/coincalc/internal/coinchange"
)

// TestGetCountersToRun tests the GetCountersToRun function.
func TestGetCountersToRun(t *testing.T) {
	t.Parallel()
	factory := coinchange.GlobalFactory()

	t.Run("Single algorithm returns one counter", func(t *testing.T) {
		t.Parallel()
		counters := GetCountersToRun("dp", factory)

		if len(counters) != 1 {
			t.Fatalf("Expected 1 counter, got %d", len(counters))
		}
		if counters[0].Key != "dp" || counters[0].Counter.Name() != "Bottom-Up DP" {
			t.Errorf("Unexpected selection %q / %q", counters[0].Key, counters[0].Counter.Name())
		}
	})

	t.Run("All algorithms returns every counter in key order", func(t *testing.T) {
		t.Parallel()
		counters := GetCountersToRun(AlgoAll, factory)

		want := []string{"dp", "greedy", "memo", "naive"}
		if len(counters) != len(want) {
			t.Fatalf("Expected %d counters for 'all', got %d", len(want), len(counters))
		}
		for i, k := range want {
			if counters[i].Key != k {
				t.Errorf("counters[%d].Key = %q, want %q", i, counters[i].Key, k)
			}
		}
	})

	t.Run("Unknown algorithm returns nil", func(t *testing.T) {
		t.Parallel()
		if counters := GetCountersToRun("bogus", factory); counters != nil {
			t.Errorf("Expected nil, got %d counters", len(counters))
		}
	})
}

func TestSelectCounters(t *testing.T) {
	t.Parallel()
	counters := SelectCounters([]string{"greedy", "bogus", "naive", "dp"}, coinchange.GlobalFactory())

	want := []string{"greedy", "naive", "dp"}
	if len(counters) != len(want) {
		t.Fatalf("Expected %d counters, got %d", len(want), len(counters))
	}
	for i, k := range want {
		if counters[i].Key != k {
			t.Errorf("counters[%d].Key = %q, want %q", i, counters[i].Key, k)
		}
	}
}
