package cli

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/coincalc/internal/coinchange"
	apperrors "github.com/agbru/coincalc/internal/errors"
	"github.com/agbru/coincalc/internal/format"
	"github.com/agbru/coincalc/internal/orchestration"
	"github.com/agbru/coincalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner while counters run.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCounters int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCounters, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable renders one row per counter with its result,
// duration and status. With opts.Details a work column is added.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CountResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	fmt.Fprintln(out, RenderComparisonTable(results, opts.Details))
}

// RenderComparisonTable returns the comparison table as a string.
func RenderComparisonTable(results []orchestration.CountResult, details bool) string {
	theme := ui.GetCurrentTableTheme()
	headers := []string{"Algorithm", "Result", "Duration"}
	if details {
		headers = append(headers, "Work")
	}
	headers = append(headers, "Status")
	statusCol := len(headers) - 1

	rows := make([][]string, 0, len(results))
	for _, res := range results {
		row := []string{res.Name, resultCell(res), durationCell(res)}
		if details {
			row = append(row, FormatWork(res.Stats))
		}
		row = append(row, FormatStatus(res))
		rows = append(rows, row)
	}

	base := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Text)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return base.Bold(true).Foreground(theme.Header)
			}
			if col == statusCol && row >= 0 && row < len(results) {
				return base.Foreground(statusColor(theme, results[row]))
			}
			return base
		})
	return t.String()
}

func statusColor(theme ui.TableTheme, res orchestration.CountResult) lipgloss.TerminalColor {
	var limitErr apperrors.LimitError
	switch {
	case res.Err == nil:
		return theme.Success
	case errors.As(res.Err, &limitErr):
		return theme.Dim
	default:
		return theme.Error
	}
}

func resultCell(res orchestration.CountResult) string {
	if res.Err != nil {
		return "-"
	}
	return res.Result.String()
}

func durationCell(res orchestration.CountResult) string {
	if res.Err != nil && res.Duration == 0 {
		return "-"
	}
	if res.Duration == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(res.Duration)
}

// FormatStatus returns the status cell for a run.
func FormatStatus(res orchestration.CountResult) string {
	var limitErr apperrors.LimitError
	switch {
	case res.Err == nil && !res.Exact:
		return "✅ Success (heuristic)"
	case res.Err == nil:
		return "✅ Success"
	case errors.As(res.Err, &limitErr):
		return fmt.Sprintf("⏭ Skipped (amount > %d)", limitErr.Limit)
	default:
		return fmt.Sprintf("❌ Failure (%v)", res.Err)
	}
}

// FormatWork summarizes a run's work counters.
func FormatWork(st coinchange.Stats) string {
	s := format.FormatNumber(st.Calls) + " steps"
	if st.CacheHits > 0 {
		s += ", " + format.FormatNumber(st.CacheHits) + " hits"
	}
	if st.TableSize > 0 {
		s += fmt.Sprintf(", %s slots", format.FormatNumber(uint64(st.TableSize)))
	}
	return s
}

// PresentResult displays the authoritative result.
func (CLIResultPresenter) PresentResult(result orchestration.CountResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// FormatDuration formats a duration for display.
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError prints a failed run and returns its exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider implements apperrors.ColorProvider with the active theme.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
