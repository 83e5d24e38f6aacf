package orchestrator_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-simplequestion/pkg/orchestrator"
	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
)

func TestEncode(t *testing.T) {
	answers := questionnaire.NewAnswers()
	answers.Set("env", "Prod")
	answers.Set("replicas", 3)
	answers.Set("owner", nil)

	cases := []struct {
		format orchestrator.Format
		want   string
	}{
		{format: orchestrator.FormatJSON, want: "{\n  \"env\": \"Prod\",\n  \"replicas\": 3,\n  \"owner\": null\n}\n"},
		{format: orchestrator.FormatYAML, want: "env: Prod\nreplicas: 3\nowner: null\n"},
		{format: orchestrator.FormatPretty, want: "env: Prod\nreplicas: 3\nowner: \n"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			got, err := orchestrator.Encode(answers, tc.format)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if diff := cmp.Diff(tc.want, string(got)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}

	empty, err := orchestrator.Encode(questionnaire.NewAnswers(), orchestrator.FormatYAML)
	if err != nil || string(empty) != "{}\n" {
		t.Fatalf("empty yaml = (%q, %v)", empty, err)
	}
	if _, err := orchestrator.Encode(answers, orchestrator.Format("xml")); err == nil {
		t.Fatalf("expected unknown format error")
	}
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]orchestrator.Format{
		"":       orchestrator.FormatJSON,
		"JSON":   orchestrator.FormatJSON,
		"yml":    orchestrator.FormatYAML,
		"pretty": orchestrator.FormatPretty,
	} {
		got, err := orchestrator.ParseFormat(raw)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = (%q, %v), want %q", raw, got, err, want)
		}
	}
	if _, err := orchestrator.ParseFormat("xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
