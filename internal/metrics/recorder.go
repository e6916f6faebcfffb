package metrics

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/coincalc/internal/coinchange"
	apperrors "github.com/agbru/coincalc/internal/errors"
)

// Outcome label values for coincalc_counts_total.
const (
	OutcomeFeasible   = "feasible"
	OutcomeInfeasible = "infeasible"
	OutcomeInvalid    = "invalid"
	OutcomeSkipped    = "skipped"
	OutcomeTimeout    = "timeout"
	OutcomeCanceled   = "canceled"
	OutcomeError      = "error"
)

// Recorder keeps per-algorithm Prometheus series for counter runs in its own
// registry, so tests and repeated runs never collide on the default one.
type Recorder struct {
	registry  *prometheus.Registry
	counts    *prometheus.CounterVec
	durations *prometheus.HistogramVec
	calls     *prometheus.CounterVec
	cacheHits *prometheus.CounterVec
	tableSize *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		counts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coincalc",
			Name:      "counts_total",
			Help:      "Counter runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "coincalc",
			Name:      "count_duration_seconds",
			Help:      "Wall time of completed counter runs.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"algorithm"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coincalc",
			Name:      "work_steps_total",
			Help:      "Recursive calls or table cells visited by completed runs.",
		}, []string{"algorithm"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "coincalc",
			Name:      "cache_hits_total",
			Help:      "Memo cache hits by completed runs.",
		}, []string{"algorithm"}),
		tableSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "coincalc",
			Name:      "table_size",
			Help:      "Subproblem slots allocated by the last completed run.",
		}, []string{"algorithm"}),
	}
	r.registry.MustRegister(r.counts, r.durations, r.calls, r.cacheHits, r.tableSize)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one counter run.
func (r *Recorder) Observe(algorithm string, result coinchange.Result, stats coinchange.Stats, d time.Duration, err error) {
	outcome := Outcome(result, err)
	r.counts.WithLabelValues(algorithm, outcome).Inc()
	if err != nil {
		return
	}
	r.durations.WithLabelValues(algorithm).Observe(d.Seconds())
	r.calls.WithLabelValues(algorithm).Add(float64(stats.Calls))
	r.cacheHits.WithLabelValues(algorithm).Add(float64(stats.CacheHits))
	r.tableSize.WithLabelValues(algorithm).Set(float64(stats.TableSize))
}

// Outcome maps a run to its outcome label.
func Outcome(result coinchange.Result, err error) string {
	var limitErr apperrors.LimitError
	switch {
	case err == nil && result.IsFeasible():
		return OutcomeFeasible
	case err == nil:
		return OutcomeInfeasible
	case apperrors.IsInvalidArgument(err):
		return OutcomeInvalid
	case errors.As(err, &limitErr):
		return OutcomeSkipped
	case errors.Is(err, context.DeadlineExceeded):
		return OutcomeTimeout
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}

// WriteText writes every gathered family in the Prometheus text format.
func (r *Recorder) WriteText(out io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return apperrors.WrapError(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return apperrors.WrapError(err, "writing metric %s", mf.GetName())
		}
	}
	return nil
}
