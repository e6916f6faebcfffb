package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/coincalc/internal/config"
	"github.com/agbru/coincalc/internal/format"
	"github.com/agbru/coincalc/internal/orchestration"
	"github.com/agbru/coincalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the user.
// It shows the input, the per-run timeout and the environment.
//
// Parameters:
//   - cfg: The validated application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Counting coins for %sM=%d%s with denominations %s%s%s.\n",
		ui.ColorMagenta(), cfg.Amount, ui.ColorReset(), ui.ColorCyan(), format.FormatCoins(cfg.Coins), ui.ColorReset())
	if cfg.Timeout > 0 {
		fmt.Fprintf(out, "Each run is limited to %s%s%s.\n", ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	if cfg.NaiveLimit > 0 {
		fmt.Fprintf(out, "Naive recursion runs only for amounts up to %s%d%s.\n", ui.ColorYellow(), cfg.NaiveLimit, ui.ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single algorithm vs comparison).
//
// Parameters:
//   - counters: The counters that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(counters []orchestration.SelectedCounter, out io.Writer) {
	var modeDesc string
	switch len(counters) {
	case 0:
		modeDesc = "No algorithm selected"
	case 1:
		modeDesc = fmt.Sprintf("Single count with the %s%s%s algorithm",
			ui.ColorGreen(), counters[0].Counter.Name(), ui.ColorReset())
	default:
		modeDesc = fmt.Sprintf("Sequential comparison of %d algorithms", len(counters))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
