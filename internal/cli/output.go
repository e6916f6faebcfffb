package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/coincalc/internal/format"
	"github.com/agbru/coincalc/internal/metrics"
	"github.com/agbru/coincalc/internal/orchestration"
	"github.com/agbru/coincalc/internal/sysmon"
	"github.com/agbru/coincalc/internal/ui"
)

// DisplayResult prints the authoritative count and, with opts.Details, the
// algorithm, time and work behind it.
func DisplayResult(res orchestration.CountResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", FormatResultLine(res, opts))
	if !opts.Details {
		return
	}
	fmt.Fprintf(out, "\n%s--- Details ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Algorithm:  %s%s%s\n", ui.ColorBlue(), res.Name, ui.ColorReset())
	fmt.Fprintf(out, "Time:       %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
	fmt.Fprintf(out, "Work:       %s\n", FormatWork(res.Stats))
}

// FormatResultLine renders the one-line answer for a run.
func FormatResultLine(res orchestration.CountResult, opts orchestration.PresentationOptions) string {
	coins := format.FormatCoins(opts.Coins)
	if !res.Result.IsFeasible() {
		return fmt.Sprintf("%sM=%d cannot be formed with %s.%s", ui.ColorYellow(), opts.Amount, coins, ui.ColorReset())
	}
	n, _ := res.Result.Count()
	return fmt.Sprintf("Minimum coins for M=%d with %s: %s%d%s", opts.Amount, coins, ui.ColorGreen(), n, ui.ColorReset())
}

// DisplayQuietResult prints only the count, -1 when infeasible, for scripts.
func DisplayQuietResult(out io.Writer, res orchestration.CountResult) {
	fmt.Fprintln(out, res.Result.Int())
}

// DisplayResourceUsage prints process CPU time, the allocation activity of
// the run and a host load sample.
func DisplayResourceUsage(out io.Writer, user, system time.Duration, mem metrics.MemoryDelta, host sysmon.Snapshot) {
	fmt.Fprintf(out, "\nResource usage:\n")
	fmt.Fprintf(out, "  CPU user/system: %s / %s\n", format.FormatExecutionDuration(user), format.FormatExecutionDuration(system))
	fmt.Fprintf(out, "  Allocated:       %s bytes\n", format.FormatNumber(mem.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", mem.GCCycles)
	if host.ProcessRSS > 0 {
		fmt.Fprintf(out, "  Resident memory: %s bytes\n", format.FormatNumber(host.ProcessRSS))
	}
	fmt.Fprintf(out, "  Host CPU/memory: %.1f%% / %.1f%%\n", host.HostCPUPercent, host.HostMemPercent)
}
