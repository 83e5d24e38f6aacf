package question

import "strings"

// Format renders the text shown before reading an answer.
//
// In list mode the message is followed by ":\n" and one "  key - label" line
// per entry, the entry whose key loosely equals def suffixed with
// " (Default)". In simple mode the values are appended inline as
// " (a/b/c)", or nothing when there are no options; def is not rendered
// because the read loop echoes it itself.
func Format(message string, def any, options Options) string {
	if IsListMode(options) {
		return formatList(message, def, options)
	}
	return formatSimple(message, options)
}

func formatList(message string, def any, options Options) string {
	var b strings.Builder
	b.WriteString(message)
	b.WriteString(":\n")
	for _, entry := range options.entries {
		b.WriteString("  ")
		b.WriteString(stringify(entry.Key))
		b.WriteString(" - ")
		b.WriteString(stringify(entry.Value))
		if LooseEqual(def, entry.Key) {
			b.WriteString(" (Default)")
		}
		b.WriteString(LineBreak)
	}
	return b.String()
}

func formatSimple(message string, options Options) string {
	if options.Empty() {
		return message
	}
	values := make([]string, 0, options.Len())
	for _, entry := range options.entries {
		values = append(values, stringify(entry.Value))
	}
	return message + " (" + strings.Join(values, "/") + ")"
}
