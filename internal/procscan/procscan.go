// Package procscan observes live OS processes. It resolves a process id to
// a snapshot of its executable metadata and locates processes whose
// executable lives under a given directory.
package procscan

import (
	"errors"
	"strings"
)

const (
	// ScanCapacity bounds a single enumeration pass. When the host runs
	// more processes than this, the excess is silently not considered.
	ScanCapacity = 1024

	// UnknownPath is reported when a process can be opened but its
	// executable path cannot be queried.
	UnknownPath = "<Unknown>"
)

var (
	// ErrProcessAbsent means the pid could not be opened for a metadata
	// query: the process has exited or access was denied.
	ErrProcessAbsent = errors.New("process not queryable")

	// ErrNoProcessFound means no live process matched the search.
	ErrNoProcessFound = errors.New("no matching process found")
)

// ProcessInfo is a point-in-time snapshot of a process's executable. It
// holds no live OS resource.
type ProcessInfo struct {
	// Name is the final path segment of Path.
	Name string
	// Path is the full executable path, or UnknownPath.
	Path string
}

// Scanner enumerates and resolves live processes. The zero value is not
// usable; construct with NewScanner.
type Scanner struct {
	enumerate func(capacity int) ([]int32, error)
	resolve   func(pid int32) (ProcessInfo, error)
	capacity  int
}

// NewScanner creates a Scanner backed by the host OS process table.
func NewScanner() *Scanner {
	return &Scanner{
		enumerate: enumeratePids,
		resolve:   resolvePid,
		capacity:  ScanCapacity,
	}
}

// Resolve returns the executable metadata for pid. Processes that have
// exited or refuse the query yield ErrProcessAbsent; a process whose path
// cannot be read still resolves, with Path set to UnknownPath.
func (s *Scanner) Resolve(pid int32) (ProcessInfo, error) {
	return s.resolve(pid)
}

// FindInDirectory returns the first live pid whose executable path starts,
// case-insensitively, with dir. Enumeration order is OS-defined, so when
// several processes share the prefix the choice between them is not
// deterministic. Returns ErrNoProcessFound when nothing matches.
func (s *Scanner) FindInDirectory(dir string) (int32, error) {
	pids, err := s.enumerate(s.capacity)
	if err != nil {
		return 0, ErrNoProcessFound
	}

	lowerDir := strings.ToLower(dir)
	for _, pid := range pids {
		if pid == 0 {
			// idle/kernel placeholder
			continue
		}
		info, err := s.resolve(pid)
		if err != nil {
			// transient process, skip
			continue
		}
		if strings.HasPrefix(strings.ToLower(info.Path), lowerDir) {
			return pid, nil
		}
	}

	return 0, ErrNoProcessFound
}

// DirOf returns the directory component of an executable path. A path with
// no separator is returned unchanged.
func DirOf(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[:i]
	}
	return path
}

func baseName(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// WaitStatus classifies the outcome of one blocking wait on a process.
type WaitStatus int

const (
	// WaitTerminated - the process signaled termination.
	WaitTerminated WaitStatus = iota
	// WaitOpenFailed - the process could not be opened for synchronization.
	WaitOpenFailed
	// WaitFailed - the wait itself failed with an OS error.
	WaitFailed
	// WaitUnexpected - the wait returned a status other than termination.
	WaitUnexpected
)

// String returns the string representation of a WaitStatus.
func (ws WaitStatus) String() string {
	switch ws {
	case WaitTerminated:
		return "Terminated"
	case WaitOpenFailed:
		return "OpenFailed"
	case WaitFailed:
		return "Failed"
	case WaitUnexpected:
		return "Unexpected"
	default:
		return "Unknown"
	}
}
