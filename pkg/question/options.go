package question

import (
	"fmt"
	"math"
	"strconv"
)

// Entry is a single key/value pair inside Options. For the sequence form the
// key is the zero based position of the value.
type Entry struct {
	Key   any
	Value any
}

// Options is an ordered, immutable collection of allowed answers. Build it
// with List for plain sequences or with Map/Pairs for keyed menus. The zero
// value is an empty collection.
type Options struct {
	entries []Entry
	index   map[any]int
}

// List returns options in sequence form: keys 0..n-1 in the order given.
func List(values ...any) Options {
	entries := make([]Entry, 0, len(values))
	for i, value := range values {
		entries = append(entries, Entry{Key: i, Value: value})
	}
	return Map(entries...)
}

// Strings is List for string values.
func Strings(values ...string) Options {
	anys := make([]any, len(values))
	for i, value := range values {
		anys[i] = value
	}
	return List(anys...)
}

// Map returns options in keyed form, keeping the order of entries. Keys are
// normalised the way associative array keys are: integers and canonical
// decimal strings collapse to the same key, so "1" and 1 address one entry.
// A repeated key replaces the earlier value but keeps its position.
func Map(entries ...Entry) Options {
	opts := Options{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[any]int, len(entries)),
	}
	for _, entry := range entries {
		key := normalizeKey(entry.Key)
		if pos, ok := opts.index[key]; ok {
			opts.entries[pos].Value = entry.Value
			continue
		}
		opts.index[key] = len(opts.entries)
		opts.entries = append(opts.entries, Entry{Key: key, Value: entry.Value})
	}
	return opts
}

// Pairs builds keyed options from alternating key and value arguments. It
// panics on an odd argument count, which is a programming error.
func Pairs(kv ...any) Options {
	if len(kv)%2 != 0 {
		panic("question: Pairs requires an even number of arguments")
	}
	entries := make([]Entry, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		entries = append(entries, Entry{Key: kv[i], Value: kv[i+1]})
	}
	return Map(entries...)
}

// Len reports the number of entries.
func (o Options) Len() int {
	return len(o.entries)
}

// Empty reports whether there are no entries.
func (o Options) Empty() bool {
	return len(o.entries) == 0
}

// Entries returns a copy of the entries in order. Keys are returned in their
// normalised form (int64 or string).
func (o Options) Entries() []Entry {
	return append([]Entry(nil), o.entries...)
}

// Keys returns the normalised keys in order.
func (o Options) Keys() []any {
	out := make([]any, len(o.entries))
	for i, entry := range o.entries {
		out[i] = entry.Key
	}
	return out
}

// Values returns the values in order.
func (o Options) Values() []any {
	out := make([]any, len(o.entries))
	for i, entry := range o.entries {
		out[i] = entry.Value
	}
	return out
}

// Lookup resolves a key to its value.
func (o Options) Lookup(key any) (any, bool) {
	pos, ok := o.index[normalizeKey(key)]
	if !ok {
		return nil, false
	}
	return o.entries[pos].Value, true
}

// HasKey reports whether key addresses an entry, even one holding nil.
func (o Options) HasKey(key any) bool {
	_, ok := o.index[normalizeKey(key)]
	return ok
}

// ContainsValue reports whether value is strictly equal to one of the values.
func (o Options) ContainsValue(value any) bool {
	for _, entry := range o.entries {
		if StrictEqual(entry.Value, value) {
			return true
		}
	}
	return false
}

// isset mirrors "key exists and holds a non-nil value".
func (o Options) isset(key any) bool {
	value, ok := o.Lookup(key)
	return ok && value != nil
}

func normalizeKey(key any) any {
	switch k := key.(type) {
	case nil:
		return ""
	case string:
		if n, ok := canonicalInt(k); ok {
			return n
		}
		return k
	case bool:
		if k {
			return int64(1)
		}
		return int64(0)
	case int:
		return int64(k)
	case int8:
		return int64(k)
	case int16:
		return int64(k)
	case int32:
		return int64(k)
	case int64:
		return k
	case uint:
		return int64(k)
	case uint8:
		return int64(k)
	case uint16:
		return int64(k)
	case uint32:
		return int64(k)
	case uint64:
		return int64(k)
	case float32:
		return truncate(float64(k))
	case float64:
		return truncate(k)
	default:
		return fmt.Sprint(k)
	}
}

func canonicalInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, strconv.FormatInt(n, 10) == s
}

func truncate(f float64) int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}
