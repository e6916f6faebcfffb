//go:build !unix

package metrics

import (
	"errors"
	"time"
)

// CPUTime is not available on this platform.
func CPUTime() (user, system time.Duration, err error) {
	return 0, 0, errors.ErrUnsupported
}
