// Package visibility decides whether a question is asked, given a rule and the
// answers collected so far.
package visibility

// Evaluator determines whether a question should be asked based on a rule
// string and the current answers.
type Evaluator interface {
	Eval(name, rule string, ctx Context) (bool, error)
}

// Context provides inputs to an Evaluator. Values holds earlier answers keyed
// by question name; Extras lets callers inject anything else (flags, env).
type Context struct {
	Values map[string]any
	Extras map[string]any
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(name, rule string, ctx Context) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(name, rule string, ctx Context) (bool, error) {
	return fn(name, rule, ctx)
}
