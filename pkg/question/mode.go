package question

// Mode says how a question's options are presented and matched.
type Mode int

const (
	// ModeSimple covers free text and plain value lists shown inline.
	ModeSimple Mode = iota
	// ModeList covers keyed menus rendered one entry per line.
	ModeList
)

func (m Mode) String() string {
	switch m {
	case ModeList:
		return "list"
	default:
		return "simple"
	}
}

// IsListMode reports whether options form a keyed menu: it is non-empty and
// nothing is stored under key 0. Format, NewValidator and Build all decide
// their branch through this predicate so they never disagree.
func IsListMode(options Options) bool {
	return !options.Empty() && !options.isset(0)
}

// DetectMode wraps IsListMode into a Mode value.
func DetectMode(options Options) Mode {
	if IsListMode(options) {
		return ModeList
	}
	return ModeSimple
}
