// Package activation launches a registered application by its application
// identifier. A platform activation service is tried first; on failure the
// application is opened through its shell-level alias, which starts the
// application without yielding a process id.
package activation

import (
	"context"
	"errors"
	"fmt"

	ole "github.com/go-ole/go-ole"
	"go.uber.org/zap"

	"librarylink/internal/pshell"
)

// Outcome classifies a launch attempt.
type Outcome int

const (
	// OutcomeSupervisable - primary activation succeeded and yielded a pid.
	OutcomeSupervisable Outcome = iota
	// OutcomeUnsupervisable - the shell fallback launched the application
	// but no process id is known.
	OutcomeUnsupervisable
	// OutcomeFailed - both launch mechanisms failed.
	OutcomeFailed
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSupervisable:
		return "Supervisable"
	case OutcomeUnsupervisable:
		return "Unsupervisable"
	case OutcomeFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Result is the three-way outcome of a launch. Pid is meaningful only for
// OutcomeSupervisable. PrimaryErr is set whenever the activation service
// failed, including when the fallback then succeeded.
type Result struct {
	Outcome     Outcome
	Pid         int32
	PrimaryErr  error
	FallbackErr error
}

// Launcher starts applications by identifier.
type Launcher struct {
	shell    pshell.Runner
	activate func(appID string) (int32, error)
	logger   *zap.Logger
}

// Option configures the Launcher.
type Option func(*Launcher)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithActivateFunc replaces the platform activation call. Used by tests.
func WithActivateFunc(fn func(appID string) (int32, error)) Option {
	return func(l *Launcher) {
		l.activate = fn
	}
}

// New creates a Launcher that falls back to the given shell.
func New(shell pshell.Runner, opts ...Option) *Launcher {
	l := &Launcher{
		shell:    shell,
		activate: activateApplication,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch activates the application identified by appID. The identifier is
// passed through opaquely; it is not validated here.
func (l *Launcher) Launch(ctx context.Context, appID string) Result {
	pid, primaryErr := l.activate(appID)
	if primaryErr == nil {
		l.logger.Info("application activated",
			zap.String("app_id", appID),
			zap.Int32("pid", pid))
		return Result{Outcome: OutcomeSupervisable, Pid: pid}
	}

	l.logger.Warn("activation service failed, trying shell fallback",
		zap.String("app_id", appID),
		zap.Error(primaryErr))

	if fallbackErr := l.shellOpen(ctx, appID); fallbackErr != nil {
		return Result{
			Outcome:     OutcomeFailed,
			PrimaryErr:  primaryErr,
			FallbackErr: fallbackErr,
		}
	}

	return Result{Outcome: OutcomeUnsupervisable, PrimaryErr: primaryErr}
}

func (l *Launcher) shellOpen(ctx context.Context, appID string) error {
	_, err := l.shell.Run(ctx, fmt.Sprintf(`Start-Process "shell:appsFolder\%s"`, appID))
	return err
}

// hresultSFalse is the S_FALSE HRESULT, surfaced by go-ole as an error even
// though CoInitializeEx uses it for "already initialized on this thread".
const hresultSFalse = 0x00000001

// comAlreadyInitialized reports whether err is the S_FALSE result of
// CoInitializeEx. That call still counts toward the apartment's
// initialization and must be balanced by CoUninitialize.
func comAlreadyInitialized(err error) bool {
	var oleErr *ole.OleError
	return errors.As(err, &oleErr) && oleErr.Code() == hresultSFalse
}
