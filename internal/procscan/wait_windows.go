//go:build windows

package procscan

import (
	"fmt"
	"time"

	"golang.org/x/sys/windows"
)

// Waiter blocks until a watched process terminates.
type Waiter struct {
	// Poll is unused on Windows; the wait is a native blocking wait.
	Poll time.Duration
}

// Wait opens pid with termination-notification rights only and blocks, with
// no timeout, until the process handle is signaled. The synchronization
// handle is released on every exit path.
func (w *Waiter) Wait(pid int32) (WaitStatus, error) {
	handle, err := windows.OpenProcess(windows.SYNCHRONIZE, false, uint32(pid))
	if err != nil {
		return WaitOpenFailed, err
	}
	defer windows.CloseHandle(handle)

	event, err := windows.WaitForSingleObject(handle, windows.INFINITE)
	if err != nil {
		return WaitFailed, err
	}

	if event == windows.WAIT_OBJECT_0 {
		return WaitTerminated, nil
	}
	return WaitUnexpected, fmt.Errorf("unexpected wait event %#x", event)
}
