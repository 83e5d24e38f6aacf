package question

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// LooseEqual compares scalars the lenient way used to mark the default entry
// of a menu: numbers and numeric strings compare by value across types, bools
// compare by truthiness, anything else compares by its string form. nil never
// matches, so a missing default marks nothing.
func LooseEqual(a, b any) bool {
	// Deliberately strict: a nil default matches nothing, not even key 0.
	if a == nil || b == nil {
		return false
	}
	if ab, ok := a.(bool); ok {
		return ab == truthy(b)
	}
	if bb, ok := b.(bool); ok {
		return bb == truthy(a)
	}
	af, aNum := numeric(a)
	bf, bNum := numeric(b)
	if aNum && bNum {
		return af == bf
	}
	return stringify(a) == stringify(b)
}

// StrictEqual reports whether a and b share a dynamic type and value. It is
// the comparison used for value membership; "1" and 1 are different answers.
func StrictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, !math.IsNaN(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	default:
		if f, ok := numeric(v); ok {
			return f != 0
		}
		return true
	}
}

// stringify renders a scalar for prompt text and error messages.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	default:
		return fmt.Sprint(t)
	}
}

// Display renders an answer or default the way prompt text does: nil is
// empty, true is "1", false is empty and numbers use their shortest form.
func Display(value any) string {
	return stringify(value)
}
