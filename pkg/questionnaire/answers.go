package questionnaire

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Answers holds collected answers keyed by question name, remembering the
// order in which they were first set.
type Answers struct {
	keys   []string
	values map[string]any
}

// NewAnswers returns an empty answer set.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]any)}
}

// Set stores value under name.
func (a *Answers) Set(name string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Get returns the answer stored under name.
func (a *Answers) Get(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[name]
	return v, ok
}

// Keys returns question names in answer order.
func (a *Answers) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

// Len reports the number of answers.
func (a *Answers) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Map returns a copy of the answers as a plain map.
func (a *Answers) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a == nil {
		return out
	}
	for _, key := range a.keys {
		out[key] = a.values[key]
	}
	return out
}

// MarshalJSON encodes the answers as an object in answer order.
func (a *Answers) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range a.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(a.values[key])
		if err != nil {
			return nil, fmt.Errorf("questionnaire: encode answer %q: %w", key, err)
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the answers as a mapping in answer order.
func (a *Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range a.Keys() {
		var value yaml.Node
		if err := value.Encode(a.values[key]); err != nil {
			return nil, fmt.Errorf("questionnaire: encode answer %q: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}
	return node, nil
}
