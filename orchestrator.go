package simplequestion

import (
	"context"

	pkgopenapi "github.com/goliatone/go-simplequestion/pkg/openapi"
	"github.com/goliatone/go-simplequestion/pkg/orchestrator"
	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
)

// Answers aliases questionnaire.Answers for callers that only use the root
// package.
type Answers = questionnaire.Answers

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// AskFile loads a questionnaire document from disk and asks every question.
func AskFile(ctx context.Context, path string, options ...orchestrator.Option) (*Answers, error) {
	q, err := questionnaire.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return orchestrator.New(options...).Run(ctx, orchestrator.Request{Questionnaire: q})
}

// AskOperation loads the OpenAPI source and asks for the request body of the
// named operation.
func AskOperation(ctx context.Context, source pkgopenapi.Source, operationID string, options ...orchestrator.Option) (*Answers, error) {
	return orchestrator.New(options...).Run(ctx, orchestrator.Request{
		Source:      source,
		OperationID: operationID,
	})
}
