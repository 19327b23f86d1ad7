package binder

import (
	"fmt"
	"maps"
)

// Args holds the named arguments of a computation call.
type Args map[string]any

// Clone returns a shallow copy. A nil Args clones to an empty map.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	maps.Copy(out, a)
	return out
}

// Arg returns the named argument converted to T.
func Arg[T any](args Args, name string) (T, error) {
	var zero T
	v, ok := args[name]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrMissingArgument, name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %T, want %T", ErrArgumentType, name, v, zero)
	}
	return t, nil
}

// ArgOr returns the named argument, or def when it was not supplied.
func ArgOr[T any](args Args, name string, def T) (T, error) {
	if _, ok := args[name]; !ok {
		return def, nil
	}
	return Arg[T](args, name)
}
