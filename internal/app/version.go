package app

import (
	"fmt"
	"io"
	"runtime"
	"slices"
)

// Build information, set with -ldflags "-X github.com/agbru/coincalc/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request the version before any other
// parsing, so -version works even next to invalid flags.
func HasVersionFlag(args []string) bool {
	return slices.ContainsFunc(args, func(a string) bool {
		switch a {
		case "-version", "--version", "-V", "--V":
			return true
		}
		return false
	})
}

// PrintVersion writes the build information.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "coincalc %s\n", Version)
	fmt.Fprintf(out, "  commit:  %s\n", Commit)
	fmt.Fprintf(out, "  built:   %s\n", BuildDate)
	fmt.Fprintf(out, "  go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
