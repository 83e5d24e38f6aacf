package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-simplequestion/pkg/question"
)

var deployFixture = filepath.Join("..", "..", "pkg", "orchestrator", "testdata", "deploy.yaml")

func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCommand(strings.NewReader(input), &out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestAskCommand_Pretty(t *testing.T) {
	out, prompts, err := execute(t, "d\n1\nn\n", "ask", deployFixture, "--plain", "--format", "pretty")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if diff := cmp.Diff("env: Dev\nreplicas: 1\nproceed: n\n", out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(prompts, "Replicas for Dev (1/2/3) [2]: ") {
		t.Fatalf("prompts went missing:\n%s", prompts)
	}
}

func TestAskCommand_EnvFormatAndPresets(t *testing.T) {
	t.Setenv("SIMPLEQUESTION_FORMAT", "yaml")

	out, _, err := execute(t, "\n", "ask", deployFixture, "--plain", "--set", "env=p", "--set", "replicas=3")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if diff := cmp.Diff("env: Prod\nreplicas: \"3\"\nproceed: \"y\"\n", out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestAskCommand_OutputFileAndMaxAttempts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	_, prompts, err := execute(t, "x\n", "ask", deployFixture, "--plain", "--max-attempts", "1", "--output", path)
	if !errors.Is(err, question.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue after one attempt, got %v", err)
	}
	if !strings.Contains(prompts, "Incorrect value 'x'.") {
		t.Fatalf("rejection not reported:\n%s", prompts)
	}

	if _, _, err := execute(t, "d\n\ny\n", "ask", deployFixture, "--plain", "-o", path); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "{\n  \"env\": \"Dev\",\n  \"replicas\": \"2\",\n  \"proceed\": \"y\"\n}\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenAPICommand(t *testing.T) {
	source := filepath.Join("..", "..", "pkg", "orchestrator", "testdata", "openapi.yaml")
	out, _, err := execute(t, "\napi\n\n\n", "openapi", source, "--operation", "createDeployment", "--plain", "--format", "pretty")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if diff := cmp.Diff("env: Prod\nservice: api\nnotify: n\nreplicas: 2\n", out); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := execute(t, "", "openapi", source, "--plain"); err == nil {
		t.Fatalf("expected missing --operation error")
	}
}

func TestConfirmCommand(t *testing.T) {
	if _, _, err := execute(t, "y\n", "confirm", "Ship", "it?", "--plain"); err != nil {
		t.Fatalf("confirm y: %v", err)
	}
	_, prompts, err := execute(t, "\n", "confirm", "Ship it?", "--plain")
	if !errors.Is(err, errDeclined) {
		t.Fatalf("expected errDeclined, got %v", err)
	}
	if prompts != "Ship it? (y/n) [n]: " {
		t.Fatalf("prompt = %q", prompts)
	}
	if exitCode(err) != 1 {
		t.Fatalf("declined should exit 1")
	}
	if _, _, err := execute(t, "\n", "confirm", "Ship it?", "--plain", "--default-yes"); err != nil {
		t.Fatalf("default yes: %v", err)
	}
}

func TestRootCommand_InvalidSettings(t *testing.T) {
	if _, _, err := execute(t, "", "ask", deployFixture, "--plain", "--format", "xml"); err == nil {
		t.Fatalf("expected format error")
	}
	if _, _, err := execute(t, "", "ask", deployFixture, "--plain", "--log-level", "loud"); err == nil {
		t.Fatalf("expected log level error")
	}
	if exitCode(nil) != 0 {
		t.Fatalf("nil error should exit 0")
	}
}
