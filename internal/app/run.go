package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/coincalc/internal/cli"
	apperrors "github.com/agbru/coincalc/internal/errors"
	"github.com/agbru/coincalc/internal/logging"
	"github.com/agbru/coincalc/internal/metrics"
	"github.com/agbru/coincalc/internal/orchestration"
	"github.com/agbru/coincalc/internal/sysmon"
)

// runDemo prints every counter's answer for the fixed demonstration inputs.
// Invalid inputs are reported inline and never change the exit code.
func (a *Application) runDemo(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	counters := orchestration.SelectCounters(cli.DemoKeys, a.Factory)
	cli.RunDemo(ctx, cli.DefaultDemoCases, counters, out)
	return apperrors.ExitSuccess
}

// runCompare runs the selected counters on the configured input, cross-checks
// them and prints the report.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	counters := orchestration.GetCountersToRun(a.Config.Algo, a.Factory)
	if len(counters) == 0 {
		fmt.Fprintf(a.ErrWriter, "No algorithm matches %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(counters, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	recorder := metrics.NewRecorder()
	memCollector := metrics.NewMemoryCollector()
	before := memCollector.Snapshot()

	results := orchestration.ExecuteCounts(ctx, counters, orchestration.RunOptions{
		Amount:     a.Config.Amount,
		Coins:      a.Config.Coins,
		Timeout:    a.Config.Timeout,
		NaiveLimit: a.Config.NaiveLimit,
		Logger:     a.logger(),
		Recorder:   recorder,
	}, progressReporter, progressOut)

	mem := metrics.Delta(before, memCollector.Snapshot())

	var exitCode int
	if a.Config.Quiet {
		exitCode = a.reportQuiet(results, out)
	} else {
		opts := orchestration.PresentationOptions{
			Amount:  a.Config.Amount,
			Coins:   a.Config.Coins,
			Verbose: a.Config.Verbose,
			Details: a.Config.Details,
		}
		presenter := cli.CLIResultPresenter{}
		exitCode = orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)
		if a.Config.Details {
			a.reportResources(ctx, out, mem)
		}
	}

	if a.Config.Metrics {
		if err := recorder.WriteText(out); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		}
	}
	return exitCode
}

// reportQuiet prints only the authoritative count. Disagreeing exact counters
// still fail the run.
func (a *Application) reportQuiet(results []orchestration.CountResult, out io.Writer) int {
	best := orchestration.BestResult(results)
	if best == nil {
		for _, r := range results {
			if r.Err != nil {
				return apperrors.HandleCalculationError(r.Err, r.Duration, a.ErrWriter, nil)
			}
		}
		return apperrors.ExitErrorGeneric
	}
	for _, r := range results {
		if r.Err == nil && r.Exact && best.Exact && r.Result != best.Result {
			fmt.Fprintf(a.ErrWriter, "Exact algorithms disagree: %s=%s, %s=%s\n", best.Name, best.Result, r.Name, r.Result)
			return apperrors.ExitErrorMismatch
		}
	}
	cli.DisplayQuietResult(out, *best)
	return apperrors.ExitSuccess
}

func (a *Application) reportResources(ctx context.Context, out io.Writer, mem metrics.MemoryDelta) {
	user, system, err := metrics.CPUTime()
	if err != nil {
		a.logger().Debug("cpu time unavailable", logging.Err(err))
	}
	cli.DisplayResourceUsage(out, user, system, mem, sysmon.Sample(ctx))
}

func (a *Application) logger() logging.Logger {
	if a.Logger == nil {
		return logging.Nop()
	}
	return a.Logger
}
