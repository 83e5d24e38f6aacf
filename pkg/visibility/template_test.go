package visibility

import (
	"strings"
	"testing"
)

func TestTemplateEvaluator(t *testing.T) {
	e := NewTemplateEvaluator()
	ctx := Context{
		Values: map[string]any{"env": "Prod", "replicas": "3", "notify": "n"},
		Extras: map[string]any{"ci": true},
	}

	cases := []struct {
		rule string
		want bool
	}{
		{rule: "", want: true},
		{rule: `env == "Prod"`, want: true},
		{rule: `env == "Dev"`, want: false},
		{rule: `env == "Prod" and notify == "y"`, want: false},
		{rule: `env == "Dev" or replicas == "3"`, want: true},
		{rule: `not missing`, want: true},
		{rule: `extras.ci`, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.rule, func(t *testing.T) {
			got, err := e.Eval("q", tc.rule, ctx)
			if err != nil {
				t.Fatalf("eval: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Eval(%q) = %v, want %v", tc.rule, got, tc.want)
			}
		})
	}
}

func TestTemplateEvaluator_InvalidRule(t *testing.T) {
	e := NewTemplateEvaluator()
	if err := e.Check(`env ==`); err == nil {
		t.Fatalf("expected compile error")
	}
	_, err := e.Eval("region", `env ==`, Context{})
	if err == nil || !strings.Contains(err.Error(), `question "region"`) {
		t.Fatalf("expected error naming the question, got %v", err)
	}
}

func TestEvaluatorFunc(t *testing.T) {
	var seen string
	fn := EvaluatorFunc(func(name, rule string, _ Context) (bool, error) {
		seen = name + ":" + rule
		return false, nil
	})
	ok, err := fn.Eval("a", "b", Context{})
	if err != nil || ok || seen != "a:b" {
		t.Fatalf("unexpected result (%v, %v, %q)", ok, err, seen)
	}
}

func TestTemplateEvaluator_NonIdentifierAnswerNames(t *testing.T) {
	e := NewTemplateEvaluator()
	ctx := Context{Values: map[string]any{"api-key": "abc", "env": "prod"}}

	got, err := e.Eval("region", `env == "prod"`, ctx)
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !got {
		t.Fatalf("expected rule to hold")
	}

	got, err = e.Eval("region", `answers.env == "prod"`, ctx)
	if err != nil || !got {
		t.Fatalf("answers map rule = (%v, %v), want (true, nil)", got, err)
	}
}

func TestTemplateContext(t *testing.T) {
	data := TemplateContext(map[string]any{"api-key": "abc", "env_1": "x"})
	if _, ok := data["api-key"]; ok {
		t.Fatalf("non-identifier name exposed at top level")
	}
	if data["env_1"] != "x" {
		t.Fatalf("identifier name missing: %v", data)
	}
	all, ok := data[AnswersKey].(map[string]any)
	if !ok || all["api-key"] != "abc" || all["env_1"] != "x" {
		t.Fatalf("answers map = %#v", data[AnswersKey])
	}
	if !IsIdentifier("replicas_2") || IsIdentifier("api-key") || IsIdentifier("") {
		t.Fatalf("identifier check mismatch")
	}
}
