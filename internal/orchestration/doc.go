// Package orchestration runs the selected coin counters one after another and
// aggregates their results for comparison. It decouples the runner from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
