package visibility

import (
	"regexp"

	"github.com/flosch/pongo2/v6"
)

// AnswersKey holds the full answer map in template contexts.
const AnswersKey = "answers"

// pongo2 rejects context keys outside this set.
var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// TemplateContext builds the pongo2 context for messages and rules. Answers
// whose names are valid identifiers are exposed at the top level; every
// answer, including names like "api-key", is reachable through "answers".
func TemplateContext(values map[string]any) pongo2.Context {
	data := make(pongo2.Context, len(values)+1)
	all := make(map[string]any, len(values))
	for key, value := range values {
		all[key] = value
		if IsIdentifier(key) {
			data[key] = value
		}
	}
	data[AnswersKey] = all
	return data
}

// IsIdentifier reports whether name can be used directly in a template.
func IsIdentifier(name string) bool {
	return identifierPattern.MatchString(name)
}
