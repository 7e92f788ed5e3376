package supervise

import "librarylink/internal/procscan"

// Reporter receives supervision progress events. Implementations render
// them for the user; the supervisor itself never formats output.
//
// Event order for one session: Waiting precedes every blocking wait, one of
// Terminated/OpenFailed/WaitFailed/UnexpectedWait follows it, Searching
// precedes every successor lookup, and the session ends with exactly one
// NoSuccessor.
type Reporter interface {
	// Waiting - a blocking wait on pid is about to begin.
	Waiting(pid int32)
	// Terminated - the watched process signaled termination.
	Terminated(pid int32)
	// OpenFailed - pid could not be opened for synchronization.
	OpenFailed(pid int32, err error)
	// WaitFailed - the blocking wait failed with an OS error.
	WaitFailed(pid int32, err error)
	// UnexpectedWait - the wait returned an unexpected status; the same
	// pid keeps being watched.
	UnexpectedWait(pid int32, err error)
	// Searching - a successor lookup under dir is starting.
	Searching(dir string)
	// Adopted - a successor was found and is now being watched. resolved
	// is false when its metadata could not be read.
	Adopted(pid int32, info procscan.ProcessInfo, resolved bool)
	// NoSuccessor - no process under dir remains; supervision ends.
	NoSuccessor(dir string)
}

// NoopReporter discards all events.
type NoopReporter struct{}

func (NoopReporter) Waiting(int32)                             {}
func (NoopReporter) Terminated(int32)                          {}
func (NoopReporter) OpenFailed(int32, error)                   {}
func (NoopReporter) WaitFailed(int32, error)                   {}
func (NoopReporter) UnexpectedWait(int32, error)               {}
func (NoopReporter) Searching(string)                          {}
func (NoopReporter) Adopted(int32, procscan.ProcessInfo, bool) {}
func (NoopReporter) NoSuccessor(string)                        {}
