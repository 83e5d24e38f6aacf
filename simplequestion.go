// Package simplequestion builds console questions from a message, an optional
// default and an optional set of options.
//
// A question with options whose first key is not 0 is shown as a keyed menu
// and answered by key; any other question is shown inline with its values in
// parentheses and answered by value:
//
//	prompt := simplequestion.New("Pick env",
//		question.WithDefault("p"),
//		question.WithOptions(question.Pairs("d", "Dev", "p", "Prod")),
//	)
//	answer, err := simplequestion.Ask(ctx, prompt)
//
// The building blocks live in pkg/question (text and validators), pkg/ask
// (the read loop), pkg/questionnaire (documents of questions) and
// pkg/orchestrator (running them end to end).
package simplequestion

import (
	"context"

	"github.com/goliatone/go-simplequestion/pkg/ask"
	"github.com/goliatone/go-simplequestion/pkg/question"
)

// Prompt aliases question.Prompt.
type Prompt = question.Prompt

// Options aliases question.Options.
type Options = question.Options

// New builds the prompt for message.
func New(message string, opts ...question.Option) Prompt {
	return question.New(message, opts...)
}

// Confirm builds the y/n preset prompt.
func Confirm(message string, opts ...question.Option) Prompt {
	return question.Confirm(message, opts...)
}

// Format renders prompt text without building a validator.
func Format(message string, def any, options Options) string {
	return question.Format(message, def, options)
}

// NewValidator returns the answer validator for the given options.
func NewValidator(options Options, required, useOptionValue bool) question.Validator {
	return question.NewValidator(options, required, useOptionValue)
}

// Ask shows p on the terminal and returns the validated answer.
func Ask(ctx context.Context, p Prompt, options ...ask.Option) (any, error) {
	return ask.New(options...).Ask(ctx, p)
}
