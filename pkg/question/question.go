package question

// MaxAttempts is the conventional number of tries a read loop grants before
// giving up on a prompt.
const MaxAttempts = 3

// Question describes a single prompt. Required only matters without options
// and UseOptionValue only matters in list mode.
type Question struct {
	Message        string
	Default        any
	Options        Options
	Required       bool
	UseOptionValue bool

	// MaxAttempts overrides the attempt bound carried to the read loop. Zero
	// keeps the package MaxAttempts and a negative value means unlimited.
	MaxAttempts int
}

// Prompt is everything a read loop needs: the text to show, the default to
// substitute for an empty line, the validator and the attempt bound (zero
// meaning unlimited).
type Prompt struct {
	Text        string
	Default     any
	Validator   Validator
	MaxAttempts int
	Mode        Mode
}

// Option customises a Question built through New, Confirm or NewQuestion.
type Option func(*Question)

// WithDefault sets the default answer.
func WithDefault(value any) Option {
	return func(q *Question) {
		q.Default = value
	}
}

// WithOptions sets the allowed answers.
func WithOptions(options Options) Option {
	return func(q *Question) {
		q.Options = options
	}
}

// WithRequired toggles rejection of absent free-text answers.
func WithRequired(required bool) Option {
	return func(q *Question) {
		q.Required = required
	}
}

// WithUseOptionValue toggles whether a list mode answer is resolved from the
// typed key to its label (true) or must be the label itself (false).
func WithUseOptionValue(enabled bool) Option {
	return func(q *Question) {
		q.UseOptionValue = enabled
	}
}

// WithMaxAttempts overrides the attempt bound; see Question.MaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(q *Question) {
		q.MaxAttempts = n
	}
}

// NewQuestion returns a required question that resolves option values,
// customised by options.
func NewQuestion(message string, options ...Option) Question {
	q := Question{
		Message:        message,
		Required:       true,
		UseOptionValue: true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&q)
	}
	return q
}

// New is NewQuestion followed by Build.
func New(message string, options ...Option) Prompt {
	return Build(NewQuestion(message, options...))
}

// Confirm builds a yes/no prompt: default "y", options "y" and "n". Options
// are applied on top of that preset.
func Confirm(message string, options ...Option) Prompt {
	preset := []Option{
		WithDefault("y"),
		WithOptions(Strings("y", "n")),
	}
	return New(message, append(preset, options...)...)
}

// Mode reports the question's mode.
func (q Question) Mode() Mode {
	return DetectMode(q.Options)
}

// ResolvedDefault returns the default expressed as an answer. When list mode
// answers must be labels (UseOptionValue false) a non-nil default is read as
// a key and replaced by its label, or nil if no such key exists.
func (q Question) ResolvedDefault() any {
	if q.UseOptionValue || q.Default == nil || !IsListMode(q.Options) {
		return q.Default
	}
	label, _ := q.Options.Lookup(q.Default)
	return label
}

// Build derives the prompt text and validator for q.
func Build(q Question) Prompt {
	def := q.ResolvedDefault()
	return Prompt{
		Text:        Format(q.Message, def, q.Options),
		Default:     def,
		Validator:   NewValidator(q.Options, q.Required, q.UseOptionValue),
		MaxAttempts: attempts(q.MaxAttempts),
		Mode:        q.Mode(),
	}
}

// Validate runs the prompt's validator, accepting every value when none is set.
func (p Prompt) Validate(value any) (any, error) {
	if p.Validator == nil {
		return value, nil
	}
	return p.Validator(value)
}

func attempts(n int) int {
	switch {
	case n == 0:
		return MaxAttempts
	case n < 0:
		return 0
	default:
		return n
	}
}
