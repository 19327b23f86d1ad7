package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingConfigRoot indicates no configuration root directory was
	// designated. Nothing can be resolved without one.
	ErrMissingConfigRoot = errors.New("configuration root not set")

	// ErrKeyNotFound indicates a lookup targeted a key absent from a document.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch indicates a value exists but has an unexpected type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidName indicates an empty document name.
	ErrInvalidName = errors.New("invalid document name")

	// ErrUnknownFormat indicates a format name that has no implementation.
	ErrUnknownFormat = errors.New("unknown config format")
)

// KeyError reports a lookup of an absent key.
type KeyError struct {
	Document string
	Key      string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("config %q: key %q not found", e.Document, e.Key)
}

func (e *KeyError) Unwrap() error { return ErrKeyNotFound }

// ParseError reports a document file that exists but could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
