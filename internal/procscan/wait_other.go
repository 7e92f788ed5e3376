//go:build !windows

package procscan

import (
	"time"

	"github.com/shirou/gopsutil/process"
)

// Waiter blocks until a watched process terminates.
type Waiter struct {
	// Poll is the termination check interval. Platforms without a native
	// blocking process wait approximate one by polling.
	Poll time.Duration
}

// Wait blocks until pid is no longer alive. A pid that is already gone
// reports WaitTerminated; this implementation cannot distinguish an
// open failure from a terminated process.
func (w *Waiter) Wait(pid int32) (WaitStatus, error) {
	poll := w.Poll
	if poll <= 0 {
		poll = 500 * time.Millisecond
	}

	for {
		alive, err := process.PidExists(pid)
		if err != nil {
			return WaitFailed, err
		}
		if !alive {
			return WaitTerminated, nil
		}
		time.Sleep(poll)
	}
}
