package questionnaire

import (
	"errors"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-simplequestion/pkg/question"
	"github.com/goliatone/go-simplequestion/pkg/visibility"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate

	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	rules = visibility.NewTemplateEvaluator()
)

type documentFile struct {
	Name      string           `yaml:"name"`
	Questions []definitionFile `yaml:"questions"`
}

type definitionFile struct {
	Name           string    `yaml:"name"`
	Message        string    `yaml:"message"`
	Help           string    `yaml:"help"`
	Default        any       `yaml:"default"`
	Options        yaml.Node `yaml:"options"`
	Required       *bool     `yaml:"required"`
	UseOptionValue *bool     `yaml:"useOptionValue"`
	Confirm        bool      `yaml:"confirm"`
	MaxAttempts    int       `yaml:"maxAttempts"`
	When           string    `yaml:"when"`
}

// LoadFile reads and parses a questionnaire document from disk.
func LoadFile(path string) (*Questionnaire, error) {
	if path == "" {
		return nil, errors.New("questionnaire: file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("questionnaire: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses a questionnaire document from fsys.
func LoadFS(fsys fs.FS, name string) (*Questionnaire, error) {
	if fsys == nil {
		return nil, errors.New("questionnaire: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("questionnaire: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a YAML or JSON document. source only labels errors.
func Parse(data []byte, source string) (*Questionnaire, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("questionnaire: file %s is empty", source)
	}

	var doc documentFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("questionnaire: parse %s: %w", source, err)
	}

	q := &Questionnaire{
		Name:      strings.TrimSpace(doc.Name),
		Source:    source,
		Questions: make([]Definition, 0, len(doc.Questions)),
	}
	for idx, raw := range doc.Questions {
		def, err := normaliseDefinition(raw)
		if err != nil {
			return nil, fmt.Errorf("questionnaire: file %s question %d: %w", source, idx, err)
		}
		q.Questions = append(q.Questions, def)
	}

	if err := Prepare(q); err != nil {
		return nil, fmt.Errorf("questionnaire: file %s: %w", source, err)
	}
	return q, nil
}

// Prepare finishes a questionnaire assembled in code or by another loader: it
// applies the confirm preset, compiles message templates, checks when rules
// and validates the result. Loaders in this module call it before returning.
func Prepare(q *Questionnaire) error {
	if q == nil {
		return errors.New("questionnaire is nil")
	}
	seen := make(map[string]struct{}, len(q.Questions))
	for i := range q.Questions {
		def := &q.Questions[i]
		if _, dup := seen[def.Name]; dup && def.Name != "" {
			return fmt.Errorf("duplicate question %q", def.Name)
		}
		seen[def.Name] = struct{}{}

		if def.Confirm {
			if def.Options.Empty() {
				def.Options = question.Strings("y", "n")
			}
			if def.Default == nil {
				def.Default = "y"
			}
		}

		def.template = nil
		if isTemplate(def.Message) {
			tpl, err := pongo2.FromString("{% autoescape off %}" + def.Message + "{% endautoescape %}")
			if err != nil {
				return fmt.Errorf("question %d: message template: %w", i, err)
			}
			def.template = tpl
		}
		if err := rules.Check(def.When); err != nil {
			return fmt.Errorf("question %q: when: %w", def.Name, err)
		}
	}
	return Validate(q)
}

// Validate checks the structural rules of a questionnaire: at least one
// question, every question named and carrying a message.
func Validate(q *Questionnaire) error {
	if q == nil {
		return errors.New("questionnaire is nil")
	}
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate.Struct(q)
}

func normaliseDefinition(raw definitionFile) (Definition, error) {
	options, err := optionsFromNode(&raw.Options)
	if err != nil {
		return Definition{}, err
	}

	def := Definition{
		Name:           strings.TrimSpace(raw.Name),
		Message:        SanitizeText(raw.Message),
		Help:           SanitizeText(raw.Help),
		Default:        displayValue(raw.Default),
		Options:        options,
		Required:       boolOr(raw.Required, true),
		UseOptionValue: boolOr(raw.UseOptionValue, true),
		Confirm:        raw.Confirm,
		MaxAttempts:    raw.MaxAttempts,
		When:           strings.TrimSpace(raw.When),
	}

	return def, nil
}

func optionsFromNode(node *yaml.Node) (question.Options, error) {
	if node == nil || node.Kind == 0 {
		return question.Options{}, nil
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return optionsFromNode(node.Alias)
	}

	switch node.Kind {
	case yaml.SequenceNode:
		values := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := scalarValue(child)
			if err != nil {
				return question.Options{}, err
			}
			values = append(values, displayValue(value))
		}
		return question.List(values...), nil
	case yaml.MappingNode:
		entries := make([]question.Entry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, err := scalarValue(node.Content[i])
			if err != nil {
				return question.Options{}, err
			}
			value, err := scalarValue(node.Content[i+1])
			if err != nil {
				return question.Options{}, err
			}
			entries = append(entries, question.Entry{Key: key, Value: displayValue(value)})
		}
		return question.Map(entries...), nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return question.Options{}, nil
		}
		return question.Options{}, fmt.Errorf("options at line %d must be a list or a mapping", node.Line)
	default:
		return question.Options{}, fmt.Errorf("options at line %d must be a list or a mapping", node.Line)
	}
}

func scalarValue(node *yaml.Node) (any, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("option at line %d must be a scalar", node.Line)
	}
	var value any
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("option at line %d: %w", node.Line, err)
	}
	return value, nil
}

// SanitizeText strips HTML markup from text meant for a terminal, leaving
// entities decoded.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return html.UnescapeString(textPolicy.Sanitize(trimmed))
}

// displayValue turns decoded scalars into the strings a user would type, so
// `options: [1, 2, 3]` accepts "2". Bools read as written and nil stays nil.
func displayValue(value any) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case bool:
		return strconv.FormatBool(typed)
	default:
		return question.Display(value)
	}
}

func isTemplate(message string) bool {
	return strings.Contains(message, "{{") || strings.Contains(message, "{%")
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
