// Package question builds terminal prompts and the validators that check a
// single answer typed in response to them.
//
// A Question is classified once as simple mode (a plain list of acceptable
// values, or no options at all) or list mode (a keyed menu). Format renders
// the prompt text and NewValidator returns the closure that accepts, rejects
// or transforms one raw input. Build combines both into a Prompt that a read
// loop (see package ask) can drive. Nothing in this package performs I/O or
// keeps state between calls.
package question
