// Package scheduler provides cancellable periodic tasks. Callbacks always
// run on the caller's goroutine, so a single owner can mutate state from
// them without locking.
package scheduler

import "time"

// Handle identifies a scheduled task. The zero value means "no task".
type Handle uint64

// Scheduler runs fn every interval until the returned handle is cancelled.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
	Cancel(h Handle)
}

func mustPositive(interval time.Duration) {
	if interval <= 0 {
		panic("scheduler: non-positive interval")
	}
}
