package core

import (
	"sync"
	"sync/atomic"
	"time"
)

var (
	coarseClockOnce sync.Once
	coarseMillis    atomic.Int64
)

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// StartCoarseClock starts the background goroutine that caches the
// epoch-millisecond timestamp every 500µs. It is safe to call multiple
// times; the goroutine is started exactly once and runs for the
// lifetime of the process, which is intentional because logging
// typically spans the entire application lifecycle.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		coarseMillis.Store(time.Now().UnixMilli())
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				coarseMillis.Store(time.Now().UnixMilli())
			}
		}()
	})
}

// CoarseNow returns the most recently cached epoch-millisecond value.
// StartCoarseClock must have been called before using CoarseNow.
func CoarseNow() int64 {
	return coarseMillis.Load()
}
