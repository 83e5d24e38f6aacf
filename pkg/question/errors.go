package question

import "fmt"

// Reason classifies a rejected answer.
type Reason string

const (
	// ReasonInvalid means the input matched no allowed option.
	ReasonInvalid Reason = "invalid"
	// ReasonEmpty means a required free-text answer was absent.
	ReasonEmpty Reason = "empty"
)

// ValidationError is returned by a Validator when an attempt is rejected. It
// is local and recoverable: the read loop shows it and asks again.
type ValidationError struct {
	Reason Reason
	// Value is the offending raw input.
	Value any
}

var (
	// ErrInvalidValue matches, via errors.Is, every ReasonInvalid error.
	ErrInvalidValue = &ValidationError{Reason: ReasonInvalid}
	// ErrEmptyValue matches, via errors.Is, every ReasonEmpty error.
	ErrEmptyValue = &ValidationError{Reason: ReasonEmpty}
)

func (e *ValidationError) Error() string {
	if e.Reason == ReasonEmpty {
		return "Empty value."
	}
	return fmt.Sprintf("Incorrect value '%s'.", stringify(e.Value))
}

// Is matches the package sentinels by reason.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Reason == e.Reason && (t == ErrInvalidValue || t == ErrEmptyValue)
}

func invalidValue(value any) error {
	return &ValidationError{Reason: ReasonInvalid, Value: value}
}

func emptyValue(value any) error {
	return &ValidationError{Reason: ReasonEmpty, Value: value}
}
