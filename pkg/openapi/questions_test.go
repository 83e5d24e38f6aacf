package openapi

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-simplequestion/pkg/question"
	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
)

func deploymentOperation() Operation {
	body := Schema{
		Type:     "object",
		Required: []string{"env", "service"},
		Properties: map[string]Schema{
			"service": {Type: "string", Title: "Service name"},
			"env": {
				Type:    "string",
				Title:   "Pick <b>environment</b>",
				Default: "p",
				Extensions: map[string]any{
					ExtensionOptions: []any{
						map[string]any{"key": "d", "label": "Dev"},
						map[string]any{"key": "p", "label": "Prod"},
					},
				},
			},
			"replicas": {Type: "integer", Description: "Replica count", Enum: []any{float64(1), float64(2), float64(3)}, Default: float64(2)},
			"notify":   {Type: "boolean", Title: "Notify the team?", Default: false},
			"labels":   {Type: "object"},
		},
		Extensions: map[string]any{ExtensionOrder: []any{"env", "missing", "service", "env"}},
	}
	return MustNewOperation("createDeployment", "POST", "/deployments", body)
}

func TestQuestionnaireFromOperation(t *testing.T) {
	q, err := QuestionnaireFromOperation(deploymentOperation())
	if err != nil {
		t.Fatalf("build questionnaire: %v", err)
	}
	if q.Name != "createDeployment" || q.Source != "POST /deployments" {
		t.Fatalf("unexpected identity %q %q", q.Name, q.Source)
	}

	names := make([]string, 0, q.Len())
	for _, def := range q.Questions {
		names = append(names, def.Name)
	}
	if diff := cmp.Diff([]string{"env", "service", "notify", "replicas"}, names); diff != "" {
		t.Fatalf("question order mismatch (-want +got):\n%s", diff)
	}

	env := q.Questions[0]
	if env.Message != "Pick environment" || !env.Required {
		t.Fatalf("env definition = %+v", env)
	}
	prompt, err := q.Prompt(0, questionnaire.NewAnswers())
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if prompt.Mode != question.ModeList || prompt.Default != "p" {
		t.Fatalf("env prompt mode %v default %v", prompt.Mode, prompt.Default)
	}
	if got, err := prompt.Validate(prompt.Default); err != nil || got != "Prod" {
		t.Fatalf("default should resolve to its label, got (%v, %v)", got, err)
	}

	notify := q.Questions[2]
	if !notify.Confirm || notify.Default != "n" || notify.Required {
		t.Fatalf("notify definition = %+v", notify)
	}

	replicas := q.Questions[3]
	if diff := cmp.Diff([]any{"1", "2", "3"}, replicas.Options.Values()); diff != "" {
		t.Fatalf("enum options mismatch (-want +got):\n%s", diff)
	}
	if replicas.Default != "2" || replicas.Message != "Replica count" || replicas.Help != "Replica count" {
		t.Fatalf("replicas definition = %+v", replicas)
	}
	prompt, err = q.Prompt(3, questionnaire.NewAnswers())
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if prompt.Text != "Replica count (1/2/3)" {
		t.Fatalf("replicas text = %q", prompt.Text)
	}
	if _, err := prompt.Validate("2"); err != nil {
		t.Fatalf("typed enum value rejected: %v", err)
	}
}

func TestQuestionnaireFromOperation_UseKey(t *testing.T) {
	op := MustNewOperation("pick", "POST", "/pick", Schema{
		Type: "object",
		Properties: map[string]Schema{
			"size": {
				Type: "string",
				Extensions: map[string]any{
					ExtensionMessage: "Size?",
					ExtensionUseKey:  true,
					ExtensionOptions: map[string]any{"s": "Small", "l": "Large"},
				},
			},
		},
	})

	q, err := QuestionnaireFromOperation(op)
	if err != nil {
		t.Fatalf("build questionnaire: %v", err)
	}
	size := q.Questions[0]
	if size.UseOptionValue || size.Message != "Size?" {
		t.Fatalf("size definition = %+v", size)
	}
	if diff := cmp.Diff([]any{"l", "s"}, size.Options.Keys()); diff != "" {
		t.Fatalf("keys should be sorted for object options (-want +got):\n%s", diff)
	}

	prompt, err := q.Prompt(0, nil)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if _, err := prompt.Validate("l"); !errors.Is(err, question.ErrInvalidValue) {
		t.Fatalf("keys are not answers when the key is kept, got %v", err)
	}
	got, err := prompt.Validate("Large")
	if err != nil || got != "Large" {
		t.Fatalf("validate label = (%v, %v)", got, err)
	}
}

func TestQuestionnaireFromOperation_Errors(t *testing.T) {
	cases := []struct {
		name string
		body Schema
		want string
	}{
		{name: "no properties", body: Schema{Type: "object"}, want: "no askable properties"},
		{name: "only objects", body: Schema{Properties: map[string]Schema{"meta": {Type: "object"}}}, want: "no askable properties"},
		{
			name: "bad use key",
			body: Schema{Properties: map[string]Schema{"a": {Type: "string", Extensions: map[string]any{ExtensionUseKey: "yes"}}}},
			want: "must be a boolean",
		},
		{
			name: "option without key",
			body: Schema{Properties: map[string]Schema{"a": {Type: "string", Extensions: map[string]any{ExtensionOptions: []any{map[string]any{"label": "A"}}}}}},
			want: "missing key",
		},
		{
			name: "scalar options",
			body: Schema{Properties: map[string]Schema{"a": {Type: "string", Extensions: map[string]any{ExtensionOptions: "a,b"}}}},
			want: "must be a list or an object",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := QuestionnaireFromOperation(MustNewOperation("op", "POST", "/op", tc.body))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestParseSource(t *testing.T) {
	src, err := ParseSource("https://example.com/openapi.yaml")
	if err != nil || src.Kind() != SourceKindURL {
		t.Fatalf("url source = (%v, %v)", src, err)
	}
	src, err = ParseSource("./specs/../openapi.yaml")
	if err != nil || src.Kind() != SourceKindFile || src.Location() != "openapi.yaml" {
		t.Fatalf("file source = (%v, %v)", src, err)
	}
	if _, err := ParseSource("  "); err == nil {
		t.Fatalf("expected error for empty source")
	}
}
