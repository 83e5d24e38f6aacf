// Package ask drives question prompts against a terminal: it shows the
// prompt text, reads a line, substitutes the default for an empty answer and
// re-asks on validation failures until the prompt's attempt bound runs out.
package ask

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-simplequestion/pkg/question"
)

// Asker runs question.Prompt values through a Driver.
type Asker struct {
	driver Driver
	logger *zap.Logger
	trim   bool
}

// New constructs an Asker with defaults (survey driver, no-op logger, trimming
// enabled).
func New(options ...Option) *Asker {
	a := &Asker{
		driver: NewSurveyDriver(),
		logger: zap.NewNop(),
		trim:   true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Ask shows p and returns the validated answer.
//
// An empty line is replaced by p.Default (nil when there is none) before
// validation. A rejected attempt is reported through the driver and asked
// again; once p.MaxAttempts attempts have failed the last validation error is
// returned. MaxAttempts of zero never gives up. End of input yields
// ErrAborted.
func (a *Asker) Ask(ctx context.Context, p question.Prompt) (any, error) {
	return a.AskWithHelp(ctx, p, "")
}

// AskWithHelp behaves like Ask and hands help to the driver for display.
func (a *Asker) AskWithHelp(ctx context.Context, p question.Prompt, help string) (any, error) {
	if ctx == nil {
		return nil, errors.New("ask: context is required")
	}
	if a.driver == nil {
		return nil, ErrNoDriver
	}

	cfg := LineConfig{
		Text:        p.Text,
		Default:     question.Display(p.Default),
		ShowDefault: p.Mode == question.ModeSimple && p.Default != nil,
		Help:        help,
	}

	var lastErr error
	for attempt := 1; p.MaxAttempts <= 0 || attempt <= p.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := a.driver.ReadLine(ctx, cfg)
		if errors.Is(err, io.EOF) {
			return nil, ErrAborted
		}
		if err != nil {
			return nil, err
		}

		if a.trim {
			line = strings.TrimSpace(line)
		}
		var value any = line
		if line == "" {
			value = p.Default
		}

		answer, err := p.Validate(value)
		if err == nil {
			a.logger.Debug("answer accepted",
				zap.Int("attempt", attempt),
				zap.Any("answer", answer),
			)
			return answer, nil
		}

		var verr *question.ValidationError
		if !errors.As(err, &verr) {
			return nil, err
		}
		lastErr = err
		a.logger.Debug("answer rejected",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", p.MaxAttempts),
			zap.String("reason", string(verr.Reason)),
		)
		if infoErr := a.driver.Info(ctx, err.Error()); infoErr != nil {
			return nil, infoErr
		}
	}

	a.logger.Info("attempts exhausted",
		zap.Int("max_attempts", p.MaxAttempts),
		zap.Error(lastErr),
	)
	return nil, lastErr
}

// AskQuestion builds q and asks it.
func (a *Asker) AskQuestion(ctx context.Context, q question.Question) (any, error) {
	return a.Ask(ctx, question.Build(q))
}

// Confirm asks a y/n question and reports whether the answer was "y".
func (a *Asker) Confirm(ctx context.Context, message string, defaultYes bool) (bool, error) {
	def := "n"
	if defaultYes {
		def = "y"
	}
	answer, err := a.Ask(ctx, question.Confirm(message, question.WithDefault(def)))
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}
