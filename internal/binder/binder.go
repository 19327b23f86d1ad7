package binder

import (
	"context"
	"sort"

	"github.com/vk/temples/internal/ctxlog"
)

// Func is the shape of every bindable computation.
type Func func(ctx context.Context, args Args) (any, error)

// Tuple is an ordered multi-value result. Outputs distributes its elements
// over the bound sinks by position.
type Tuple []any

// Source is anything a computation argument can be loaded from.
type Source interface {
	LoadAny(ctx context.Context) (any, error)
}

// Sink is anything a computation result can be stored into.
type Sink interface {
	SetAny(v any) error
	Write(ctx context.Context) error
}

// Computation is a named Func. Wrappers keep Name and Doc so diagnostics
// stacked on top still report the original computation.
type Computation struct {
	Name string
	Doc  string
	fn   Func
}

// New creates a computation.
func New(name string, fn Func) *Computation {
	return &Computation{Name: name, fn: fn}
}

// WithDoc returns a copy of c carrying doc.
func (c *Computation) WithDoc(doc string) *Computation {
	return &Computation{Name: c.Name, Doc: doc, fn: c.fn}
}

// Wrap returns a computation with c's identity running fn instead.
func (c *Computation) Wrap(fn Func) *Computation {
	return &Computation{Name: c.Name, Doc: c.Doc, fn: fn}
}

// Call runs the computation. A nil args is treated as empty.
func (c *Computation) Call(ctx context.Context, args Args) (any, error) {
	if args == nil {
		args = Args{}
	}
	return c.fn(ctx, args)
}

// Inputs returns a computation that loads every bound source on each call
// and passes the loaded values as named arguments together with the
// caller's own arguments. A caller argument that shadows a bound name fails
// with a *DuplicateArgumentError before anything is loaded.
func Inputs(c *Computation, bindings map[string]Source) *Computation {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	return c.Wrap(func(ctx context.Context, args Args) (any, error) {
		for _, name := range names {
			if _, dup := args[name]; dup {
				return nil, &DuplicateArgumentError{Computation: c.Name, Name: name}
			}
		}

		logger := ctxlog.FromContext(ctx).With("computation", c.Name)
		merged := args.Clone()
		for _, name := range names {
			v, err := bindings[name].LoadAny(ctx)
			if err != nil {
				return nil, err
			}
			merged[name] = v
		}
		logger.Debug("Inputs resolved.", "inputs", names)

		return c.Call(ctx, merged)
	})
}

// Outputs returns a computation that stores its result into sinks. With a
// single sink the whole result is stored. With several sinks the result
// must be a Tuple of the same length, otherwise a *BindingArityError is
// returned and nothing is written. Sinks are set and written in binding
// order; the first failure stops the loop and earlier writes remain. The
// result is returned unchanged.
func Outputs(c *Computation, sinks ...Sink) *Computation {
	return c.Wrap(func(ctx context.Context, args Args) (any, error) {
		result, err := c.Call(ctx, args)
		if err != nil {
			return nil, err
		}

		values, err := distribute(c.Name, result, len(sinks))
		if err != nil {
			return result, err
		}

		for i, sink := range sinks {
			if err := sink.SetAny(values[i]); err != nil {
				return result, err
			}
			if err := sink.Write(ctx); err != nil {
				return result, err
			}
		}
		ctxlog.FromContext(ctx).Debug("Outputs stored.", "computation", c.Name, "count", len(sinks))
		return result, nil
	})
}

// distribute splits result into one value per sink.
func distribute(name string, result any, n int) ([]any, error) {
	switch n {
	case 0:
		return nil, nil
	case 1:
		return []any{result}, nil
	}

	tuple, ok := result.(Tuple)
	if !ok {
		return nil, &BindingArityError{Computation: name, Want: n, Got: 1}
	}
	if len(tuple) != n {
		return nil, &BindingArityError{Computation: name, Want: n, Got: len(tuple)}
	}
	return tuple, nil
}
