package visibility

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

// TemplateEvaluator evaluates rules as pongo2 if-conditions, e.g.
// `env == "Prod" and replicas != "1"`. Unknown names are falsy. Extras are
// reachable under "extras" and every answer under "answers".
type TemplateEvaluator struct {
	mu    sync.Mutex
	cache map[string]*pongo2.Template
}

// NewTemplateEvaluator returns an evaluator with an empty compile cache.
func NewTemplateEvaluator() *TemplateEvaluator {
	return &TemplateEvaluator{cache: make(map[string]*pongo2.Template)}
}

var _ Evaluator = (*TemplateEvaluator)(nil)

// Eval reports whether rule holds. An empty rule always holds.
func (e *TemplateEvaluator) Eval(name, rule string, ctx Context) (bool, error) {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return true, nil
	}
	tpl, err := e.compile(trimmed)
	if err != nil {
		return false, fmt.Errorf("visibility: question %q: %w", name, err)
	}

	data := TemplateContext(ctx.Values)
	data["extras"] = ctx.Extras

	out, err := tpl.Execute(data)
	if err != nil {
		return false, fmt.Errorf("visibility: question %q: %w", name, err)
	}
	return out == "1", nil
}

// Check compiles rule without evaluating it.
func (e *TemplateEvaluator) Check(rule string) error {
	trimmed := strings.TrimSpace(rule)
	if trimmed == "" {
		return nil
	}
	_, err := e.compile(trimmed)
	return err
}

func (e *TemplateEvaluator) compile(rule string) (*pongo2.Template, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if tpl, ok := e.cache[rule]; ok {
		return tpl, nil
	}
	tpl, err := pongo2.FromString("{% if " + rule + " %}1{% endif %}")
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", rule, err)
	}
	e.cache[rule] = tpl
	return tpl, nil
}
