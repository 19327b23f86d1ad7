package config

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Document is an immutable mapping of keys to nested values loaded from one
// configuration file. Values are strings, numbers, booleans, slices and
// nested map[string]any. Accessors hand out copies so the document cannot be
// changed after load.
type Document struct {
	name   string
	values map[string]any
}

// NewDocument builds a document from a decoded mapping. The mapping is
// copied; later changes to values are not observed.
func NewDocument(name string, values map[string]any) *Document {
	return &Document{name: name, values: copyMap(values)}
}

// Name returns the logical name of the document.
func (d *Document) Name() string { return d.name }

// Len returns the number of top-level keys.
func (d *Document) Len() int { return len(d.values) }

// Keys returns the top-level keys in sorted order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.values))
	for k := range d.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the top-level key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Map returns a deep copy of the whole document.
func (d *Document) Map() map[string]any { return copyMap(d.values) }

// Get returns the value stored under a top-level key.
func (d *Document) Get(key string) (any, error) {
	return d.Lookup(key)
}

// Lookup walks nested mappings along path. Every segment must exist.
func (d *Document) Lookup(path ...string) (any, error) {
	if len(path) == 0 {
		return d.Map(), nil
	}

	var cur any = d.values
	for i, seg := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: config %q: %q is %T, not a mapping",
				ErrTypeMismatch, d.name, strings.Join(path[:i], "."), cur)
		}
		cur, ok = m[seg]
		if !ok {
			return nil, &KeyError{Document: d.name, Key: strings.Join(path[:i+1], ".")}
		}
	}
	return copyValue(cur), nil
}

// Section returns the nested mapping under path as its own document.
func (d *Document) Section(path ...string) (*Document, error) {
	v, err := d.Lookup(path...)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: config %q: %q is %T, not a mapping",
			ErrTypeMismatch, d.name, strings.Join(path, "."), v)
	}
	return &Document{name: d.name + "." + strings.Join(path, "."), values: m}, nil
}

// Value looks up path in doc and converts the result to T. Integer and
// floating point kinds convert into each other when no precision is lost;
// out-of-range or inexact conversions are type mismatches.
func Value[T any](doc *Document, path ...string) (T, error) {
	var zero T
	v, err := doc.Lookup(path...)
	if err != nil {
		return zero, err
	}
	if t, ok := v.(T); ok {
		return t, nil
	}
	if t, ok := convertNumber[T](v); ok {
		return t, nil
	}
	return zero, fmt.Errorf("%w: config %q: %q is %T, want %T",
		ErrTypeMismatch, doc.name, strings.Join(path, "."), v, zero)
}

// ValueOr is like Value but returns def when the key is absent. Type
// mismatches are still reported.
func ValueOr[T any](doc *Document, def T, path ...string) (T, error) {
	v, err := Value[T](doc, path...)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return def, nil
		}
		return def, err
	}
	return v, nil
}

func convertNumber[T any](v any) (T, bool) {
	var zero T
	var out any
	switch any(zero).(type) {
	case float64:
		f, ok := asFloat(v)
		if !ok {
			return zero, false
		}
		out = f
	case int64:
		i, ok := asInt64(v)
		if !ok {
			return zero, false
		}
		out = i
	case int:
		i, ok := asInt64(v)
		if !ok || i < math.MinInt || i > math.MaxInt {
			return zero, false
		}
		out = int(i)
	default:
		return zero, false
	}
	return out.(T), true
}

// asInt64 converts integer kinds directly and floats only when they hold
// a whole number inside the int64 range.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		// 2^63 is exactly representable; MaxInt64 is not.
		if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// asFloat converts integers only when float64 holds them exactly.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return exactFloat(int64(n))
	case int64:
		return exactFloat(n)
	default:
		return 0, false
	}
}

func exactFloat(i int64) (float64, bool) {
	f := float64(i)
	if f >= math.MaxInt64 || int64(f) != i {
		return 0, false
	}
	return f, true
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyMap(e)
		}
		return out
	default:
		return v
	}
}
