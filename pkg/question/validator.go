package question

// Validator checks one raw answer. It returns the answer to keep, which may
// differ from the input, or a *ValidationError. A nil input means nothing was
// entered.
type Validator func(value any) (any, error)

// NewValidator returns the validator for a question. The branch is chosen
// here, once:
//
//   - with options in list mode and useOptionValue set, the input must be a
//     key and the mapped value is returned;
//   - with any other options the input must strictly equal one of the option
//     values and is returned unchanged;
//   - without options, a nil input is rejected when required and everything
//     else, including "", passes through.
func NewValidator(options Options, required, useOptionValue bool) Validator {
	if options.Empty() {
		return func(value any) (any, error) {
			if required && value == nil {
				return nil, emptyValue(value)
			}
			return value, nil
		}
	}

	if IsListMode(options) && useOptionValue {
		return func(value any) (any, error) {
			answer, ok := options.Lookup(value)
			if !ok {
				return nil, invalidValue(value)
			}
			return answer, nil
		}
	}

	return func(value any) (any, error) {
		if !options.ContainsValue(value) {
			return nil, invalidValue(value)
		}
		return value, nil
	}
}
