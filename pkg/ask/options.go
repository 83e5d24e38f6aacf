package ask

import "go.uber.org/zap"

// Option configures an Asker.
type Option func(*Asker)

// WithDriver overrides the prompt driver used by the Asker.
func WithDriver(driver Driver) Option {
	return func(a *Asker) {
		if driver != nil {
			a.driver = driver
		}
	}
}

// WithLogger attaches a logger for attempt bookkeeping. Answers are logged at
// debug level only.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Asker) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithTrim toggles trimming surrounding whitespace from entered lines. It is
// on by default, so a line of spaces counts as empty and takes the default.
func WithTrim(enabled bool) Option {
	return func(a *Asker) {
		a.trim = enabled
	}
}
