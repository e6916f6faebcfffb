//go:build unix

package metrics

import (
	"time"

	"golang.org/x/sys/unix"
)

// CPUTime returns the user and system CPU time consumed by the process.
func CPUTime() (user, system time.Duration, err error) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0, err
	}
	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano()), nil
}
