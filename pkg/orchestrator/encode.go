package orchestrator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-simplequestion/pkg/question"
	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
)

// Format selects how Encode writes answers.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatPretty Format = "pretty"
)

// ParseFormat maps a user supplied name onto a Format. Empty means JSON.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "pretty", "text":
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("orchestrator: unknown format %q", raw)
	}
}

// Encode renders answers in the requested format, keeping answer order.
// Pretty output is one "name: value" line per answer.
func Encode(answers *questionnaire.Answers, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		data, err := json.MarshalIndent(answers, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("orchestrator: encode json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		if answers.Len() == 0 {
			return []byte("{}\n"), nil
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(answers); err != nil {
			return nil, fmt.Errorf("orchestrator: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("orchestrator: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatPretty:
		var buf bytes.Buffer
		for _, key := range answers.Keys() {
			value, _ := answers.Get(key)
			fmt.Fprintf(&buf, "%s: %s\n", key, question.Display(value))
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("orchestrator: unknown format %q", format)
	}
}
