//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/coincalc/internal/format"
	"github.com/agbru/coincalc/internal/orchestration"
	"github.com/agbru/coincalc/internal/ui"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This decouples DisplayProgress from a specific spinner implementation.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the text after the spinner. The spinner reads Suffix from
// its own goroutine, so the write happens under its lock.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner naming the running counter until
// progressChan is closed, then calls wg.Done.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCounters int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numCounters)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		s.UpdateSuffix(FormatProgress(agg.Update(update)))
	}
}

// FormatProgress renders the spinner suffix for a progress state.
func FormatProgress(p orchestration.AggregatedProgress) string {
	suffix := fmt.Sprintf(" %d/%d done", p.Completed, p.Total)
	if p.Current != "" {
		suffix = fmt.Sprintf(" running %s%s%s (%d/%d done)", ui.ColorBlue(), p.Current, ui.ColorReset(), p.Completed, p.Total)
	}
	if p.ETA > 0 {
		suffix += ", ETA " + format.FormatExecutionDuration(p.ETA)
	}
	return suffix
}
