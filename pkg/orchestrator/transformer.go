package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
)

// Transformer mutates a questionnaire before it is asked. Implementations can
// reword messages, change defaults or relax requirements.
type Transformer interface {
	Transform(ctx context.Context, q *questionnaire.Questionnaire) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, q *questionnaire.Questionnaire) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, q *questionnaire.Questionnaire) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, q)
}

// PresetTransformer applies declarative per-question patches loaded from a
// YAML or JSON document:
//
//	questions:
//	  env:
//	    message: "Target environment for {{ service }}"
//	    default: s
//	  owner:
//	    required: false
type PresetTransformer struct {
	patches map[string]questionPatch
}

type presetDocument struct {
	Questions map[string]questionPatch `yaml:"questions"`
}

type questionPatch struct {
	Message     *string `yaml:"message"`
	Help        *string `yaml:"help"`
	Default     any     `yaml:"default"`
	Required    *bool   `yaml:"required"`
	MaxAttempts *int    `yaml:"maxAttempts"`
}

// NewPresetTransformer constructs a transformer from raw YAML or JSON bytes.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	var document presetDocument
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{patches: document.Questions}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patches and re-prepares the questionnaire so patched
// messages are compiled again.
func (t *PresetTransformer) Transform(ctx context.Context, q *questionnaire.Questionnaire) error {
	if q == nil {
		return errors.New("preset transformer: questionnaire is nil")
	}
	if len(t.patches) == 0 {
		return nil
	}

	names := make([]string, 0, len(t.patches))
	for name := range t.patches {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		def := findDefinition(q, name)
		if def == nil {
			return fmt.Errorf("preset transformer: question %q not found", name)
		}
		applyPatch(def, t.patches[name])
	}
	return questionnaire.Prepare(q)
}

func applyPatch(def *questionnaire.Definition, patch questionPatch) {
	if patch.Message != nil {
		if msg := questionnaire.SanitizeText(*patch.Message); msg != "" {
			def.Message = msg
		}
	}
	if patch.Help != nil {
		def.Help = questionnaire.SanitizeText(*patch.Help)
	}
	if patch.Default != nil {
		def.Default = patch.Default
	}
	if patch.Required != nil {
		def.Required = *patch.Required
	}
	if patch.MaxAttempts != nil {
		def.MaxAttempts = *patch.MaxAttempts
	}
}

func findDefinition(q *questionnaire.Questionnaire, name string) *questionnaire.Definition {
	for idx := range q.Questions {
		if q.Questions[idx].Name == name {
			return &q.Questions[idx]
		}
	}
	return nil
}
