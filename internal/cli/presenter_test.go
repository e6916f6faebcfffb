package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/coincalc/internal/coinchange"
	apperrors "github.com/agbru/coincalc/internal/errors"
	"github.com/agbru/coincalc/internal/orchestration"
	"github.com/agbru/coincalc/internal/ui"
)

func sampleResults() []orchestration.CountResult {
	return []orchestration.CountResult{
		{Key: "dp", Name: "Bottom-Up DP", Exact: true, Result: coinchange.Feasible(2), Stats: coinchange.Stats{Calls: 18, TableSize: 7}, Duration: 3 * time.Microsecond},
		{Key: "greedy", Name: "Greedy (largest coin first)", Result: coinchange.Feasible(3), Stats: coinchange.Stats{Calls: 3}, Duration: time.Microsecond},
		{Key: "naive", Name: "Naive Recursion", Exact: true, Err: apperrors.LimitError{Operation: "Naive Recursion", Amount: 60, Limit: 30}},
		{Key: "memo", Name: "Memoized Recursion (top-down)", Exact: true, Err: apperrors.TimeoutError{Operation: "Memoized Recursion (top-down)", Limit: time.Second}, Duration: time.Second},
	}
}

func TestRenderComparisonTable(t *testing.T) {
	ui.InitTheme(true)
	results := sampleResults()

	t.Run("Basic columns", func(t *testing.T) {
		out := RenderComparisonTable(results, false)
		for _, want := range []string{"Algorithm", "Result", "Duration", "Status", "Bottom-Up DP", "Greedy (largest coin first)", "Success (heuristic)", "Skipped (amount > 30)", "Failure"} {
			if !strings.Contains(out, want) {
				t.Errorf("table missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Work") {
			t.Errorf("Work column present without details:\n%s", out)
		}
	})

	t.Run("Details adds work column", func(t *testing.T) {
		out := RenderComparisonTable(results, true)
		for _, want := range []string{"Work", "18 steps, 7 slots"} {
			if !strings.Contains(out, want) {
				t.Errorf("table missing %q:\n%s", want, out)
			}
		}
	})
}

func TestPresentComparisonTable(t *testing.T) {
	ui.InitTheme(true)
	var buf bytes.Buffer
	CLIResultPresenter{}.PresentComparisonTable(sampleResults(), orchestration.PresentationOptions{}, &buf)
	if !strings.Contains(buf.String(), "--- Comparison Summary ---") {
		t.Errorf("missing summary header:\n%s", buf.String())
	}
}

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name string
		res  orchestration.CountResult
		want string
	}{
		{"exact success", orchestration.CountResult{Exact: true}, "✅ Success"},
		{"heuristic success", orchestration.CountResult{}, "✅ Success (heuristic)"},
		{"skipped", orchestration.CountResult{Err: apperrors.LimitError{Limit: 25}}, "⏭ Skipped (amount > 25)"},
		{"canceled", orchestration.CountResult{Err: context.Canceled}, "❌ Failure (context canceled)"},
		{"other", orchestration.CountResult{Err: errors.New("boom")}, "❌ Failure (boom)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatStatus(tt.res); got != tt.want {
				t.Errorf("FormatStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWork(t *testing.T) {
	tests := []struct {
		st   coinchange.Stats
		want string
	}{
		{coinchange.Stats{Calls: 3}, "3 steps"},
		{coinchange.Stats{Calls: 19, CacheHits: 5, TableSize: 6}, "19 steps, 5 hits, 6 slots"},
		{coinchange.Stats{Calls: 1234567}, "1,234,567 steps"},
	}
	for _, tt := range tests {
		if got := FormatWork(tt.st); got != tt.want {
			t.Errorf("FormatWork(%+v) = %q, want %q", tt.st, got, tt.want)
		}
	}
}

func TestHandleError(t *testing.T) {
	ui.InitTheme(true)
	var buf bytes.Buffer
	code := CLIResultPresenter{}.HandleError(apperrors.TimeoutError{Operation: "dp", Limit: time.Second}, time.Second, &buf)
	if code != apperrors.ExitErrorTimeout {
		t.Errorf("exit code = %d, want %d", code, apperrors.ExitErrorTimeout)
	}
	if !strings.Contains(buf.String(), "Timeout") {
		t.Errorf("output = %q", buf.String())
	}
}
