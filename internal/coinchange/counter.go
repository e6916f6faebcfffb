package coinchange

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=counter.go -destination=mocks/mock_counter.go -package=mocks

const tracerName = "github.com/agbru/coincalc/internal/coinchange"

// Counter is the public interface the runner and the CLI work with.
type Counter interface {
	// Name returns a human-readable algorithm name.
	Name() string
	// Exact reports whether the counter always returns the optimum.
	Exact() bool
	// Count validates the input and computes the coin count.
	//
	// Strategies cannot be interrupted. When ctx finishes before the
	// strategy returns, Count stops waiting and returns ctx.Err(); the
	// abandoned computation runs to completion in the background and its
	// result is discarded.
	Count(ctx context.Context, amount int, coins []int) (Result, Stats, error)
}

// StrategyCounter adapts a Strategy to the Counter interface and records an
// OpenTelemetry span for each count.
type StrategyCounter struct {
	strategy Strategy
}

// NewCounter wraps a Strategy.
func NewCounter(s Strategy) Counter {
	return &StrategyCounter{strategy: s}
}

// Name returns the strategy name.
func (c *StrategyCounter) Name() string { return c.strategy.Name() }

// Exact returns whether the strategy is exact.
func (c *StrategyCounter) Exact() bool { return c.strategy.Exact() }

// Strategy returns the wrapped strategy.
func (c *StrategyCounter) Strategy() Strategy { return c.strategy }

type outcome struct {
	result Result
	stats  Stats
	err    error
}

// Count implements Counter.
func (c *StrategyCounter) Count(ctx context.Context, amount int, coins []int) (Result, Stats, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "coinchange.Count")
	defer span.End()
	span.SetAttributes(
		attribute.String("coinchange.algorithm", c.Name()),
		attribute.Int("coinchange.amount", amount),
		attribute.IntSlice("coinchange.coins", coins),
	)

	if err := Validate(amount, coins); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid argument")
		return Infeasible, Stats{}, err
	}
	if err := CheckBounds(c.strategy, amount); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "amount limit")
		return Infeasible, Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Infeasible, Stats{}, err
	}

	// The background run keeps its own copy so a caller that stops waiting
	// can reuse its slice.
	coins = slices.Clone(coins)
	done := make(chan outcome, 1)
	go func() {
		var st Stats
		r, err := run(c.strategy, amount, coins, &st)
		done <- outcome{result: r, stats: st, err: err}
	}()

	select {
	case o := <-done:
		if o.err != nil {
			span.RecordError(o.err)
			span.SetStatus(codes.Error, "strategy failed")
			return Infeasible, o.stats, o.err
		}
		span.SetAttributes(
			attribute.String("coinchange.result", o.result.String()),
			attribute.Int64("coinchange.calls", int64(o.stats.Calls)),
		)
		span.SetStatus(codes.Ok, "")
		return o.result, o.stats, nil
	case <-ctx.Done():
		err := ctx.Err()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Infeasible, Stats{}, err
	}
}
