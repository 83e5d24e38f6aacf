package ask

import "context"

// LineConfig describes one read.
type LineConfig struct {
	// Text is the formatted prompt, possibly spanning several lines.
	Text string
	// Default is echoed next to Text when ShowDefault is set. Substituting it
	// for an empty answer is the Asker's job, not the driver's.
	Default     string
	ShowDefault bool
	Help        string
}

// Driver abstracts the terminal so the ask loop can be tested without one and
// callers can swap implementations.
type Driver interface {
	// ReadLine shows cfg and returns one entered line without its line
	// ending. It returns io.EOF when input ends before a line was entered.
	ReadLine(ctx context.Context, cfg LineConfig) (string, error)
	// Info shows a message, typically a rejected attempt.
	Info(ctx context.Context, msg string) error
}
