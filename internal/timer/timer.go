// Package timer measures elapsed time for benchmark runs.
package timer

import (
	"time"

	"go.uber.org/atomic"
)

var fence atomic.Int64

// Now returns the current time, read between two sequentially consistent
// atomic operations.
func Now() time.Time {
	fence.Add(1)
	t := time.Now()
	fence.Add(1)
	return t
}

// Millis returns d in whole milliseconds.
func Millis(d time.Duration) int64 {
	return d.Milliseconds()
}

// Since is Now().Sub(start).
func Since(start time.Time) time.Duration {
	return Now().Sub(start)
}
