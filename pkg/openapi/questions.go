package openapi

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-simplequestion/pkg/question"
	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
)

// Extensions recognised on request-body schemas and their properties.
const (
	ExtensionOptions = "x-question-options"
	ExtensionUseKey  = "x-question-use-key"
	ExtensionOrder   = "x-question-order"
	ExtensionMessage = "x-question-message"
)

// ErrNoQuestions is returned when an operation body has no scalar properties.
var ErrNoQuestions = errors.New("openapi: operation has no askable properties")

// QuestionnaireFromOperation maps each top-level scalar property of the
// operation's request body to a question. Object and array properties are
// skipped.
//
// Messages come from x-question-message, then title, description and finally
// the property name. enum values become simple options; x-question-options
// (a list of {key, label} objects) becomes a keyed menu whose answer is the
// label unless x-question-use-key is true. Booleans use the y/n confirm
// preset. Questions follow the body's x-question-order list, then property
// name.
func QuestionnaireFromOperation(op Operation) (*questionnaire.Questionnaire, error) {
	body := op.RequestBody
	if len(body.Properties) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoQuestions, op.ID)
	}

	q := &questionnaire.Questionnaire{
		Name:   op.ID,
		Source: op.Method + " " + op.Path,
	}
	for _, name := range propertyOrder(body) {
		prop := body.Properties[name]
		if !isScalar(prop) {
			continue
		}
		def, err := definitionFromProperty(name, prop, body.IsRequired(name))
		if err != nil {
			return nil, fmt.Errorf("openapi: operation %s property %q: %w", op.ID, name, err)
		}
		q.Questions = append(q.Questions, def)
	}
	if len(q.Questions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoQuestions, op.ID)
	}

	if err := questionnaire.Prepare(q); err != nil {
		return nil, fmt.Errorf("openapi: operation %s: %w", op.ID, err)
	}
	return q, nil
}

func definitionFromProperty(name string, prop Schema, required bool) (questionnaire.Definition, error) {
	def := questionnaire.Definition{
		Name:           name,
		Message:        propertyMessage(name, prop),
		Help:           questionnaire.SanitizeText(prop.Description),
		Required:       required,
		UseOptionValue: true,
	}

	if raw, ok := prop.Extension(ExtensionUseKey); ok {
		useKey, isBool := raw.(bool)
		if !isBool {
			return questionnaire.Definition{}, fmt.Errorf("%s must be a boolean", ExtensionUseKey)
		}
		def.UseOptionValue = !useKey
	}

	switch {
	case prop.Type == "boolean":
		def.Confirm = true
		switch prop.Default {
		case true:
			def.Default = "y"
		case false:
			def.Default = "n"
		}
		return def, nil
	case hasExtension(prop, ExtensionOptions):
		raw, _ := prop.Extension(ExtensionOptions)
		options, err := keyedOptions(raw)
		if err != nil {
			return questionnaire.Definition{}, err
		}
		def.Options = options
		def.Default = prop.Default
		return def, nil
	case len(prop.Enum) > 0:
		values := make([]any, 0, len(prop.Enum))
		for _, value := range prop.Enum {
			values = append(values, question.Display(value))
		}
		def.Options = question.List(values...)
	}

	if prop.Default != nil {
		def.Default = question.Display(prop.Default)
	}
	return def, nil
}

func propertyMessage(name string, prop Schema) string {
	if raw, ok := prop.Extension(ExtensionMessage); ok {
		if text, isString := raw.(string); isString {
			if msg := questionnaire.SanitizeText(text); msg != "" {
				return msg
			}
		}
	}
	for _, candidate := range []string{prop.Title, prop.Description} {
		if msg := questionnaire.SanitizeText(candidate); msg != "" {
			return msg
		}
	}
	return name
}

func keyedOptions(raw any) (question.Options, error) {
	switch typed := raw.(type) {
	case []any:
		entries := make([]question.Entry, 0, len(typed))
		for i, item := range typed {
			obj, ok := item.(map[string]any)
			if !ok {
				return question.Options{}, fmt.Errorf("%s[%d] must be an object", ExtensionOptions, i)
			}
			key, hasKey := obj["key"]
			if !hasKey || key == nil {
				return question.Options{}, fmt.Errorf("%s[%d] is missing key", ExtensionOptions, i)
			}
			label, hasLabel := obj["label"]
			if !hasLabel {
				label = key
			}
			entries = append(entries, question.Entry{Key: key, Value: question.Display(label)})
		}
		return question.Map(entries...), nil
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		entries := make([]question.Entry, 0, len(keys))
		for _, key := range keys {
			entries = append(entries, question.Entry{Key: key, Value: question.Display(typed[key])})
		}
		return question.Map(entries...), nil
	default:
		return question.Options{}, fmt.Errorf("%s must be a list or an object", ExtensionOptions)
	}
}

func propertyOrder(body Schema) []string {
	names := make([]string, 0, len(body.Properties))
	seen := make(map[string]struct{}, len(body.Properties))

	if raw, ok := body.Extension(ExtensionOrder); ok {
		if list, isList := raw.([]any); isList {
			for _, item := range list {
				name, isString := item.(string)
				if !isString {
					continue
				}
				name = strings.TrimSpace(name)
				if _, exists := body.Properties[name]; !exists {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}

	rest := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		if _, done := seen[name]; !done {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func isScalar(s Schema) bool {
	switch s.Type {
	case "string", "integer", "number", "boolean":
		return true
	case "":
		return len(s.Properties) == 0 && s.Items == nil
	default:
		return false
	}
}

func hasExtension(s Schema, key string) bool {
	_, ok := s.Extension(key)
	return ok
}
