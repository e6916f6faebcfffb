// Package ui provides theme and color support for the coincalc command line.
// It defines ANSI color schemes for plain text output and lipgloss palettes
// for rendered tables, and honours NO_COLOR.
package ui
