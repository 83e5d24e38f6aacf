package questionnaire

import (
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-simplequestion/pkg/question"
	"github.com/goliatone/go-simplequestion/pkg/visibility"
)

// Definition is one named question inside a questionnaire.
type Definition struct {
	Name           string `validate:"required"`
	Message        string `validate:"required"`
	Help           string
	Default        any
	Options        question.Options
	Required       bool
	UseOptionValue bool
	Confirm        bool
	MaxAttempts    int `validate:"gte=-1"`
	// When is a rule over earlier answers; the question is skipped when it
	// does not hold.
	When string

	template *pongo2.Template
}

// Questionnaire is an ordered list of definitions loaded from one document.
type Questionnaire struct {
	Name      string
	Source    string
	Questions []Definition `validate:"required,min=1,dive"`
}

// Question returns the core question for d using its static message.
func (d Definition) Question() question.Question {
	return d.question(d.Message)
}

func (d Definition) question(message string) question.Question {
	return question.Question{
		Message:        message,
		Default:        d.Default,
		Options:        d.Options,
		Required:       d.Required,
		UseOptionValue: d.UseOptionValue,
		MaxAttempts:    d.MaxAttempts,
	}
}

// Render resolves the definition's message against earlier answers. Plain
// messages are returned untouched.
func (d Definition) Render(answers *Answers) (string, error) {
	if d.template == nil {
		return d.Message, nil
	}
	out, err := d.template.Execute(visibility.TemplateContext(answers.Map()))
	if err != nil {
		return "", fmt.Errorf("questionnaire: render %q: %w", d.Name, err)
	}
	return out, nil
}

// Len reports the number of questions.
func (q *Questionnaire) Len() int {
	if q == nil {
		return 0
	}
	return len(q.Questions)
}

// Lookup finds a definition by name.
func (q *Questionnaire) Lookup(name string) (Definition, bool) {
	if q == nil {
		return Definition{}, false
	}
	for _, def := range q.Questions {
		if def.Name == name {
			return def, true
		}
	}
	return Definition{}, false
}

// Prompt builds the prompt for the i-th question, rendering its message with
// the answers collected so far.
func (q *Questionnaire) Prompt(i int, answers *Answers) (question.Prompt, error) {
	if i < 0 || i >= q.Len() {
		return question.Prompt{}, fmt.Errorf("questionnaire: question index %d out of range", i)
	}
	def := q.Questions[i]
	message, err := def.Render(answers)
	if err != nil {
		return question.Prompt{}, err
	}
	return question.Build(def.question(message)), nil
}
