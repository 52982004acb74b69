package logging

import "sync/atomic"

// asyncIDCounter backs NextAsyncID. The zero value means "never used"; the
// first call hands out 1.
var asyncIDCounter atomic.Uint64

// NextAsyncID returns the next process-wide id for correlating log messages
// belonging to one logical asynchronous execution flow. Ids are
// monotonically increasing, wraparound-safe and never 0 (the value reserved
// for "unset").
func NextAsyncID() uint64 {
	for {
		if id := asyncIDCounter.Add(1); id != 0 {
			return id
		}
	}
}
