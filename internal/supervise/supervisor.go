// Package supervise watches a launched process and re-acquires its
// successor when it disappears. Some launch mechanisms produce a
// short-lived bootstrap process whose worker continues under the same
// install directory; the loop follows that lineage until no process under
// the directory remains.
package supervise

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"librarylink/internal/procscan"
)

// Resolver maps a pid to a snapshot of its executable metadata.
type Resolver interface {
	Resolve(pid int32) (procscan.ProcessInfo, error)
}

// Locator finds a live process whose executable lives under a directory.
type Locator interface {
	FindInDirectory(dir string) (int32, error)
}

// Waiter blocks until the watched process terminates.
type Waiter interface {
	Wait(pid int32) (procscan.WaitStatus, error)
}

// Supervisor drives the watch loop for one process lineage. It owns the
// loop state and the target directory for the lifetime of one Run call;
// nothing persists across calls.
type Supervisor struct {
	resolver Resolver
	locator  Locator
	waiter   Waiter
	reporter Reporter
	logger   *zap.Logger
}

// New creates a Supervisor over the given process observation primitives.
func New(resolver Resolver, locator Locator, waiter Waiter, opts ...Option) *Supervisor {
	s := &Supervisor{
		resolver: resolver,
		locator:  locator,
		waiter:   waiter,
		reporter: NoopReporter{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run supervises the lineage starting at pid until no successor process
// can be found. The target directory is derived once from the first
// process's executable path and never recomputed, so the search scope
// stays at the original install location even as the loop hops to
// successors. Run blocks for the whole session; there is no cancellation
// surface. It returns an error only when the initial process cannot be
// resolved, in which case supervision never starts.
func (s *Supervisor) Run(pid int32) error {
	info, err := s.resolver.Resolve(pid)
	if err != nil {
		return fmt.Errorf("resolve initial process %d: %w", pid, err)
	}

	dir := procscan.DirOf(info.Path)
	logger := s.logger.With(
		zap.String("session_id", uuid.NewString()),
		zap.String("target_dir", dir),
	)
	logger.Info("supervision started",
		zap.Int32("pid", pid),
		zap.String("path", info.Path))

	s.run(logger, pid, dir)

	logger.Info("supervision ended")
	return nil
}

func (s *Supervisor) run(logger *zap.Logger, pid int32, dir string) {
	state := StateMonitoring
	current := pid

	for state != StateStopped {
		switch state {
		case StateMonitoring:
			s.reporter.Waiting(current)
			status, err := s.waiter.Wait(current)

			switch status {
			case procscan.WaitTerminated:
				s.reporter.Terminated(current)
				state = s.transition(logger, state, StateSearching, current)
			case procscan.WaitOpenFailed:
				s.reporter.OpenFailed(current, err)
				state = s.transition(logger, state, StateSearching, current)
			case procscan.WaitFailed:
				s.reporter.WaitFailed(current, err)
				state = s.transition(logger, state, StateSearching, current)
			default:
				// Unexpected wait status: log and re-enter the wait on
				// the same pid, no state change.
				s.reporter.UnexpectedWait(current, err)
				logger.Warn("unexpected wait status",
					zap.Int32("pid", current),
					zap.Error(err))
			}

		case StateSearching:
			s.reporter.Searching(dir)
			next, err := s.locator.FindInDirectory(dir)
			if err != nil {
				s.reporter.NoSuccessor(dir)
				state = s.transition(logger, state, StateStopped, current)
				continue
			}

			// Resolve before the next wait begins; a successor that is
			// itself mid-termination may resolve absent, which is
			// reported but does not stop adoption.
			info, resolveErr := s.resolver.Resolve(next)
			s.reporter.Adopted(next, info, resolveErr == nil)
			current = next
			state = s.transition(logger, state, StateMonitoring, current)
		}
	}
}

func (s *Supervisor) transition(logger *zap.Logger, from, to State, pid int32) State {
	logger.Debug("state transition",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int32("pid", pid))
	return to
}
