package binder

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateArgument indicates a bound input name was also passed by the caller.
	ErrDuplicateArgument = errors.New("duplicate argument")

	// ErrBindingArity indicates a result could not be distributed over the bound outputs.
	ErrBindingArity = errors.New("output binding arity mismatch")

	// ErrMissingArgument indicates a required argument was not supplied.
	ErrMissingArgument = errors.New("missing argument")

	// ErrArgumentType indicates an argument has an unexpected type.
	ErrArgumentType = errors.New("argument type mismatch")
)

// DuplicateArgumentError reports an input name supplied twice.
type DuplicateArgumentError struct {
	Computation string
	Name        string
}

func (e *DuplicateArgumentError) Error() string {
	return fmt.Sprintf("%s: argument %q is bound to an input and passed explicitly", e.Computation, e.Name)
}

func (e *DuplicateArgumentError) Unwrap() error { return ErrDuplicateArgument }

// BindingArityError reports a result whose length differs from the number
// of bound outputs.
type BindingArityError struct {
	Computation string
	Want        int
	Got         int
}

func (e *BindingArityError) Error() string {
	return fmt.Sprintf("%s: returned %d value(s) for %d bound output(s)", e.Computation, e.Got, e.Want)
}

func (e *BindingArityError) Unwrap() error { return ErrBindingArity }
