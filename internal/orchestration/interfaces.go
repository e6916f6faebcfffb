package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/coincalc/internal/coinchange"
)

// CountResult encapsulates the outcome of a single counter run.
// It serves as the shared domain type between orchestration and presentation layers.
type CountResult struct {
	// Key is the registry key of the counter (e.g., "dp").
	Key string
	// Name is the display name of the counter.
	Name string
	// Exact reports whether the counter always returns the optimum.
	Exact bool
	// Result is the computed count. It is Infeasible if an error occurred.
	Result coinchange.Result
	// Stats holds the work counters of a completed run.
	Stats coinchange.Stats
	// Duration is the time taken by the run.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Amount  int
	Coins   []int
	Verbose bool
	Details bool
}

// ProgressUpdate is sent when a counter starts and when it finishes.
type ProgressUpdate struct {
	// Index is the position of the counter in the run order.
	Index int
	// Name is the display name of the counter.
	Name string
	// Done is false on start and true on completion.
	Done bool
}

// ProgressReporter defines the interface for displaying run progress.
//
// Implementations handle the visual representation (spinners, logs) while
// the orchestration layer focuses on running the counters.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCounters int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCounters int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCounters int, out io.Writer) {
	f(wg, progressChan, numCounters, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting counter results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []CountResult, opts PresentationOptions, out io.Writer)

	// PresentResult displays the final, authoritative result.
	PresentResult(result CountResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// Recorder receives one observation per finished run.
type Recorder interface {
	Observe(algorithm string, result coinchange.Result, stats coinchange.Stats, d time.Duration, err error)
}
