// Package metrics collects run measurements for coincalc: per-algorithm
// Prometheus series, process CPU time and Go heap snapshots.
package metrics
