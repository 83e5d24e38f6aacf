// Package questionnaire loads ordered sets of named questions from YAML or
// JSON documents and turns each entry into a question.Prompt.
//
// An entry's options keep the document's shape: a sequence becomes a simple
// inline list and a mapping becomes a keyed menu in document order. Messages
// are stripped of HTML markup and may reference earlier answers with pongo2
// syntax, e.g. "Deploy to {{ env }}?".
package questionnaire
