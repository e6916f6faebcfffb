package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/coincalc/internal/coinchange"
	"github.com/agbru/coincalc/internal/format"
	"github.com/agbru/coincalc/internal/orchestration"
	"github.com/agbru/coincalc/internal/ui"
)

// DemoCase is one input of the demonstration.
type DemoCase struct {
	Amount int
	Coins  []int
}

// DefaultDemoCases are the fixed inputs shown when coincalc runs without an
// amount. The last two are invalid and show the error path.
var DefaultDemoCases = []DemoCase{
	{Amount: 6, Coins: []int{1, 3, 4}},
	{Amount: 11, Coins: []int{1, 5, 7}},
	{Amount: 23, Coins: []int{2, 4, 6}},
	{Amount: 0, Coins: []int{1, 2, 5}},
	{Amount: -1, Coins: []int{1, 2}},
	{Amount: 7, Coins: []int{0, 3}},
}

// RunDemo runs every counter on every case and prints one line per counter:
// "  <name>: <count>" or "  <name>: ERROR -> <message>". Errors never stop
// the demonstration.
func RunDemo(ctx context.Context, cases []DemoCase, counters []orchestration.SelectedCounter, out io.Writer) {
	for _, dc := range cases {
		fmt.Fprintf(out, "\n%sM=%d, coins=%s%s\n", ui.ColorBold(), dc.Amount, format.FormatCoins(dc.Coins), ui.ColorReset())
		for _, sc := range counters {
			r, _, err := sc.Counter.Count(ctx, dc.Amount, dc.Coins)
			if err != nil {
				fmt.Fprintf(out, "  %s: %sERROR -> %v%s\n", sc.Counter.Name(), ui.ColorRed(), err, ui.ColorReset())
				continue
			}
			fmt.Fprintf(out, "  %s: %s\n", sc.Counter.Name(), r)
		}
	}
}

// DemoKeys lists the counters of the demonstration in display order.
var DemoKeys = []string{coinchange.KeyGreedy, coinchange.KeyNaive, coinchange.KeyMemo, coinchange.KeyDP}
