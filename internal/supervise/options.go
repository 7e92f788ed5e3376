package supervise

import "go.uber.org/zap"

// Option configures the Supervisor.
type Option func(*Supervisor)

// WithReporter sets the progress event sink.
func WithReporter(r Reporter) Option {
	return func(s *Supervisor) {
		s.reporter = r
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Supervisor) {
		s.logger = logger
	}
}
