// Package logging provides a unified logging interface for the coin counters
// and the comparison runner. It abstracts the underlying logging
// implementation, allowing consistent logging across components while
// supporting multiple backends (zerolog by default, the standard log package
// as a fallback).
package logging
