package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-simplequestion/internal/openapi/loader"
	internalParser "github.com/goliatone/go-simplequestion/internal/openapi/parser"
	"github.com/goliatone/go-simplequestion/pkg/ask"
	pkgopenapi "github.com/goliatone/go-simplequestion/pkg/openapi"
	"github.com/goliatone/go-simplequestion/pkg/questionnaire"
	"github.com/goliatone/go-simplequestion/pkg/visibility"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom OpenAPI loader.
func WithLoader(loader pkgopenapi.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom OpenAPI parser.
func WithParser(parser pkgopenapi.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithAsker injects the asker used to prompt for answers.
func WithAsker(asker *ask.Asker) Option {
	return func(o *Orchestrator) {
		o.asker = asker
	}
}

// WithLogger sets the logger. Each run logs with a run_id field.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTransformer registers a Transformer that can patch the questionnaire
// before any question is asked.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithEvaluator replaces the evaluator used for questions carrying a when
// rule.
func WithEvaluator(evaluator visibility.Evaluator) Option {
	return func(o *Orchestrator) {
		o.evaluator = evaluator
	}
}

// Orchestrator coordinates the full pipeline from a questionnaire source to
// collected answers. Missing stages fall back to the built-in implementations.
type Orchestrator struct {
	loader      pkgopenapi.Loader
	parser      pkgopenapi.Parser
	asker       *ask.Asker
	logger      *zap.Logger
	transformer Transformer
	evaluator   visibility.Evaluator
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one run. Exactly one of Questionnaire, Document or Source
// is needed; the OpenAPI inputs also need OperationID.
type Request struct {
	// Questionnaire is asked as-is when set.
	Questionnaire *questionnaire.Questionnaire

	// Source identifies where the OpenAPI document lives. Optional when
	// Document is supplied.
	Source pkgopenapi.Source

	// Document allows callers to bypass the loader.
	Document *pkgopenapi.Document

	// OperationID selects which OpenAPI operation to ask for.
	OperationID string

	// Presets answers questions up front. A preset is validated like a typed
	// answer and the question is not shown.
	Presets map[string]any

	// Extras is exposed to when rules under "extras".
	Extras map[string]any
}

// Run resolves the questionnaire for req and asks every question in order.
// Messages are rendered against the answers collected so far, and a question
// whose when rule does not hold is skipped without an answer.
func (o *Orchestrator) Run(ctx context.Context, req Request) (*questionnaire.Answers, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := o.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := o.applyTransformer(ctx, q); err != nil {
		return nil, err
	}

	logger := o.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("questionnaire", q.Name),
	)
	logger.Debug("questionnaire started", zap.Int("questions", q.Len()))

	answers := questionnaire.NewAnswers()
	for i, def := range q.Questions {
		if def.When != "" {
			visible, err := o.evaluator.Eval(def.Name, def.When, visibility.Context{
				Values: answers.Map(),
				Extras: req.Extras,
			})
			if err != nil {
				return answers, fmt.Errorf("orchestrator: %w", err)
			}
			if !visible {
				logger.Debug("question skipped", zap.String("question", def.Name))
				continue
			}
		}

		prompt, err := q.Prompt(i, answers)
		if err != nil {
			return answers, err
		}

		if preset, ok := req.Presets[def.Name]; ok {
			value, err := prompt.Validate(preset)
			if err != nil {
				return answers, fmt.Errorf("orchestrator: preset %q: %w", def.Name, err)
			}
			logger.Debug("preset applied", zap.String("question", def.Name))
			answers.Set(def.Name, value)
			continue
		}

		value, err := o.asker.AskWithHelp(ctx, prompt, def.Help)
		if err != nil {
			logger.Info("questionnaire stopped",
				zap.String("question", def.Name),
				zap.Int("answered", answers.Len()),
				zap.Error(err),
			)
			return answers, fmt.Errorf("orchestrator: question %q: %w", def.Name, err)
		}
		answers.Set(def.Name, value)
	}

	logger.Info("questionnaire completed", zap.Int("answered", answers.Len()))
	return answers, nil
}

// Resolve returns the questionnaire a request describes without asking
// anything.
func (o *Orchestrator) Resolve(ctx context.Context, req Request) (*questionnaire.Questionnaire, error) {
	if req.Questionnaire != nil {
		return req.Questionnaire, nil
	}
	if req.OperationID == "" {
		return nil, errors.New("orchestrator: operation id is required")
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	operations, err := o.parser.Operations(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse operations: %w", err)
	}
	op, ok := operations[req.OperationID]
	if !ok {
		return nil, fmt.Errorf("orchestrator: operation %q not found", req.OperationID)
	}

	q, err := pkgopenapi.QuestionnaireFromOperation(op)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build questionnaire: %w", err)
	}
	if location := doc.Location(); location != "" {
		q.Source = location
	}
	return q, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgopenapi.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgopenapi.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyTransformer(ctx context.Context, q *questionnaire.Questionnaire) error {
	if o.transformer == nil || q == nil {
		return nil
	}
	if err := o.transformer.Transform(ctx, q); err != nil {
		return fmt.Errorf("orchestrator: transform questionnaire: %w", err)
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(pkgopenapi.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgopenapi.NewParserOptions())
	}
	if o.asker == nil {
		o.asker = ask.New(ask.WithLogger(o.logger))
	}
	if o.evaluator == nil {
		o.evaluator = visibility.NewTemplateEvaluator()
	}
}
