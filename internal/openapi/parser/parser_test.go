package parser

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-simplequestion/pkg/openapi"
)

func loadFixture(t *testing.T) pkgopenapi.Document {
	t.Helper()
	path := filepath.Join("testdata", "deploy.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile(path), data)
}

func TestOperations_ExtractsRequestBodies(t *testing.T) {
	parser := New(pkgopenapi.NewParserOptions())
	operations, err := parser.Operations(context.Background(), loadFixture(t))
	if err != nil {
		t.Fatalf("parse operations: %v", err)
	}

	ids := make([]string, 0, len(operations))
	for id := range operations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if diff := cmp.Diff([]string{"createDeployment", "delete:/deployments/{id}"}, ids); diff != "" {
		t.Fatalf("operation ids mismatch (-want +got):\n%s", diff)
	}

	op := operations["createDeployment"]
	if op.Method != "POST" || op.Path != "/deployments" || op.Summary != "Create a deployment" {
		t.Fatalf("unexpected operation metadata: %+v", op)
	}

	body := op.RequestBody
	if body.Type != "object" {
		t.Fatalf("body type = %q, want object", body.Type)
	}
	if body.Ref != "#/components/schemas/Deployment" {
		t.Fatalf("body ref = %q", body.Ref)
	}
	if len(body.Properties) != 5 {
		t.Fatalf("properties = %d, want 5 (allOf merged)", len(body.Properties))
	}
	if !body.IsRequired("service") || !body.IsRequired("env") || body.IsRequired("replicas") {
		t.Fatalf("required set mismatch: %v", body.Required)
	}

	order, ok := body.Extension("x-question-order")
	if !ok {
		t.Fatalf("x-question-order not merged from allOf")
	}
	if diff := cmp.Diff([]any{"env", "service"}, order); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	env := body.Properties["env"]
	if env.Title != "Pick <b>environment</b>" || env.Default != "p" {
		t.Fatalf("env schema = %+v", env)
	}
	if _, ok := env.Extension("x-question-options"); !ok {
		t.Fatalf("env options extension missing")
	}

	replicas := body.Properties["replicas"]
	if replicas.Type != "integer" || len(replicas.Enum) != 3 {
		t.Fatalf("replicas schema = %+v", replicas)
	}
}

func TestOperations_RejectsDocumentsWithoutPaths(t *testing.T) {
	const document = `{"openapi": "3.0.0", "info": {"title": "Empty", "version": "1"}, "paths": {}}`
	doc := pkgopenapi.MustNewDocument(pkgopenapi.SourceFromFile("inline.json"), []byte(document))

	_, err := New(pkgopenapi.NewParserOptions()).Operations(context.Background(), doc)
	if err == nil || !strings.Contains(err.Error(), "does not contain any paths") {
		t.Fatalf("expected missing paths error, got %v", err)
	}
}

func TestOperations_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(pkgopenapi.NewParserOptions()).Operations(ctx, loadFixture(t)); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestConvertSchemaHandlesRecursiveReferences(t *testing.T) {
	const document = `{
  "openapi": "3.0.0",
  "info": { "title": "Cycle", "version": "1.0.0" },
  "paths": {},
  "components": {
    "schemas": {
      "Team": {
        "type": "object",
        "properties": {
          "lead": { "$ref": "#/components/schemas/Member" }
        }
      },
      "Member": {
        "type": "object",
        "properties": {
          "team": { "$ref": "#/components/schemas/Team" }
        }
      }
    }
  }
}`

	doc, err := openapi3.NewLoader().LoadFromData([]byte(document))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	team := convertSchema(doc.Components.Schemas["Team"])
	lead, ok := team.Properties["lead"]
	if !ok {
		t.Fatalf("expected lead property on Team schema")
	}
	back, ok := lead.Properties["team"]
	if !ok {
		t.Fatalf("expected team property on Member schema")
	}
	if back.Ref != "#/components/schemas/Team" {
		t.Fatalf("expected team property to keep its reference, got %+v", back)
	}
}

func TestExtractExtensions_KeepsQuestionKeys(t *testing.T) {
	got := extractExtensions(map[string]any{
		"x-question-use-key": true,
		"x-internal":         "drop",
	})
	if diff := cmp.Diff(map[string]any{"x-question-use-key": true}, got); diff != "" {
		t.Fatalf("extensions mismatch (-want +got):\n%s", diff)
	}
	if extractExtensions(map[string]any{"x-other": 1}) != nil {
		t.Fatalf("expected nil when no question keys remain")
	}
}
