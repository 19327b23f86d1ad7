package artifact

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValue indicates Write was called before any value was loaded or set.
	ErrNoValue = errors.New("artifact has no value to write")

	// ErrUnimplemented indicates an artifact was built without a codec.
	ErrUnimplemented = errors.New("artifact codec not implemented")

	// ErrTypeMismatch indicates a value of the wrong type was handed to an artifact.
	ErrTypeMismatch = errors.New("artifact value type mismatch")
)

// StorageReadError wraps a failure to decode an artifact from storage.
type StorageReadError struct {
	Path string
	Err  error
}

func (e *StorageReadError) Error() string {
	return fmt.Sprintf("reading artifact %s: %v", e.Path, e.Err)
}

func (e *StorageReadError) Unwrap() error { return e.Err }

// StorageWriteError wraps a failure to persist an artifact.
type StorageWriteError struct {
	Path string
	Err  error
}

func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("writing artifact %s: %v", e.Path, e.Err)
}

func (e *StorageWriteError) Unwrap() error { return e.Err }
