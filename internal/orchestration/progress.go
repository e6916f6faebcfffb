package orchestration

import "time"

// ProgressAggregator tracks how many counters of a run have finished and
// estimates the remaining time from the average duration so far.
type ProgressAggregator struct {
	numCounters int
	completed   int
	current     string
	startTime   time.Time
}

// NewProgressAggregator creates an aggregator for numCounters runs.
// Returns nil if numCounters <= 0.
func NewProgressAggregator(numCounters int) *ProgressAggregator {
	if numCounters <= 0 {
		return nil
	}
	return &ProgressAggregator{numCounters: numCounters, startTime: time.Now()}
}

// AggregatedProgress holds the state after processing one update.
type AggregatedProgress struct {
	// Current is the name of the running counter, empty between runs.
	Current string
	// Completed is the number of finished counters.
	Completed int
	// Total is the number of counters in the run.
	Total int
	// Fraction is Completed/Total.
	Fraction float64
	// ETA is the estimated time until all counters finish. Zero until the
	// first counter completes.
	ETA time.Duration
}

// Update processes a single progress update.
func (a *ProgressAggregator) Update(u ProgressUpdate) AggregatedProgress {
	if u.Done {
		if a.completed < a.numCounters {
			a.completed++
		}
		a.current = ""
	} else {
		a.current = u.Name
	}
	return a.snapshot()
}

func (a *ProgressAggregator) snapshot() AggregatedProgress {
	p := AggregatedProgress{
		Current:   a.current,
		Completed: a.completed,
		Total:     a.numCounters,
		Fraction:  float64(a.completed) / float64(a.numCounters),
	}
	if a.completed > 0 && a.completed < a.numCounters {
		perCounter := time.Since(a.startTime) / time.Duration(a.completed)
		p.ETA = perCounter * time.Duration(a.numCounters-a.completed)
	}
	return p
}

// NumCounters returns the number of counters being tracked.
func (a *ProgressAggregator) NumCounters() int { return a.numCounters }

// IsMultiCounter returns true if tracking more than one counter.
func (a *ProgressAggregator) IsMultiCounter() bool { return a.numCounters > 1 }

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
