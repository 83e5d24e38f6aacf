// Package orchestrator wires the loader → parser → questionnaire → ask
// pipeline behind a single Run call, with dependency injection friendly
// options for callers that need to swap a stage.
package orchestrator
