package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/coincalc/internal/coinchange"
	apperrors "github.com/agbru/coincalc/internal/errors"
	"github.com/agbru/coincalc/internal/logging"
)

// ProgressBufferMultiplier is the number of progress updates a single run
// emits (start and finish). The channel is sized so sends never block.
const ProgressBufferMultiplier = 2

// RunOptions configures ExecuteCounts.
type RunOptions struct {
	// Amount and Coins are the input shared by every counter.
	Amount int
	Coins  []int
	// Timeout bounds each run. Zero means no per-run deadline.
	Timeout time.Duration
	// NaiveLimit skips the naive counter when Amount exceeds it. Zero
	// disables the ceiling.
	NaiveLimit int
	// Logger receives debug traces. nil disables logging.
	Logger logging.Logger
	// Recorder receives one observation per run. nil disables recording.
	Recorder Recorder
}

// ExecuteCounts runs the selected counters one at a time and collects their
// results in selection order.
//
// Runs are sequential so their timings do not interfere. A run that fails
// does not stop the others; only cancellation of ctx does. Results of runs
// that never started carry ctx's error.
func ExecuteCounts(ctx context.Context, counters []SelectedCounter, opts RunOptions, progressReporter ProgressReporter, out io.Writer) []CountResult {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	results := make([]CountResult, len(counters))
	for i, sc := range counters {
		results[i] = CountResult{Key: sc.Key, Name: sc.Counter.Name(), Exact: sc.Counter.Exact(), Result: coinchange.Infeasible}
	}

	progressChan := make(chan ProgressUpdate, len(counters)*ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(counters), out)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(1)
	for i, sc := range counters {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			progressChan <- ProgressUpdate{Index: i, Name: results[i].Name}
			results[i] = runOne(gctx, sc, opts, logger)
			progressChan <- ProgressUpdate{Index: i, Name: results[i].Name, Done: true}
			if opts.Recorder != nil {
				r := results[i]
				opts.Recorder.Observe(r.Key, r.Result, r.Stats, r.Duration, r.Err)
			}
			// Only cancellation aborts the remaining runs.
			if errors.Is(results[i].Err, context.Canceled) && ctx.Err() != nil {
				return results[i].Err
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runOne(ctx context.Context, sc SelectedCounter, opts RunOptions, logger logging.Logger) CountResult {
	res := CountResult{Key: sc.Key, Name: sc.Counter.Name(), Exact: sc.Counter.Exact(), Result: coinchange.Infeasible}

	if limit := naiveCeiling(sc.Key, opts.NaiveLimit); limit > 0 && opts.Amount > limit {
		res.Err = apperrors.LimitError{Operation: res.Name, Amount: opts.Amount, Limit: limit}
		logger.Warn("counter skipped", logging.String("algorithm", sc.Key), logging.Int("limit", limit))
		return res
	}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	logger.Debug("counter started", logging.String("algorithm", sc.Key), logging.Int("amount", opts.Amount))
	start := time.Now()
	res.Result, res.Stats, res.Err = sc.Counter.Count(runCtx, opts.Amount, opts.Coins)
	res.Duration = time.Since(start)

	// A deadline that belongs to this run, not to the caller, is a timeout.
	if errors.Is(res.Err, context.DeadlineExceeded) && ctx.Err() == nil {
		res.Err = apperrors.TimeoutError{Operation: res.Name, Limit: opts.Timeout}
	}

	if res.Err != nil {
		logger.Error("counter failed", res.Err, logging.String("algorithm", sc.Key), logging.Duration("elapsed", res.Duration))
		return res
	}
	logger.Debug("counter finished",
		logging.String("algorithm", sc.Key),
		logging.String("result", res.Result.String()),
		logging.Uint64("calls", res.Stats.Calls),
		logging.Duration("elapsed", res.Duration),
	)
	return res
}

// naiveCeiling returns the amount above which the naive counter is skipped.
// Its recursion is as deep as the memoized one, so it never exceeds
// coinchange.MaxMemoAmount; a deeper run would overflow the goroutine stack.
func naiveCeiling(key string, configured int) int {
	if key != coinchange.KeyNaive {
		return 0
	}
	if configured > 0 && configured < coinchange.MaxMemoAmount {
		return configured
	}
	return coinchange.MaxMemoAmount
}

// AnalyzeComparisonResults checks the results of a comparison run and
// renders the summary.
//
// Exact counters that completed must agree; a disagreement is reported with
// ExitErrorMismatch. The greedy answer may legitimately differ from the
// optimum and only produces a note. When nothing completed, the first error
// decides the exit code.
func AnalyzeComparisonResults(results []CountResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	var reference *CountResult
	var fallback *CountResult
	var firstError error
	successCount := 0

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			if firstError == nil {
				firstError = r.Err
			}
			continue
		}
		successCount++
		if r.Exact && reference == nil {
			reference = r
		}
		if fallback == nil {
			fallback = r
		}
	}

	presenter.PresentComparisonTable(results, opts, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the count.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	if reference == nil {
		fmt.Fprintf(out, "\nGlobal Status: Success. No exact algorithm completed; the result below may not be optimal.\n")
		presenter.PresentResult(*fallback, opts, out)
		return apperrors.ExitSuccess
	}

	for _, r := range results {
		if r.Err == nil && r.Exact && r.Result != reference.Result {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Exact algorithms disagree: %s=%s, %s=%s.\n",
				reference.Name, reference.Result, r.Name, r.Result)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All exact results are consistent.\n")
	for _, r := range results {
		if r.Err == nil && !r.Exact && r.Result != reference.Result {
			fmt.Fprintf(out, "Note: %s found %s, the optimum is %s.\n", r.Name, r.Result, reference.Result)
		}
	}
	presenter.PresentResult(*reference, opts, out)
	return apperrors.ExitSuccess
}

// BestResult returns the authoritative result of a run: the first completed
// exact counter, else the first completed counter, else nil.
func BestResult(results []CountResult) *CountResult {
	var fallback *CountResult
	for i := range results {
		if results[i].Err != nil {
			continue
		}
		if results[i].Exact {
			return &results[i]
		}
		if fallback == nil {
			fallback = &results[i]
		}
	}
	return fallback
}
