package artifact

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack stores any msgpack-serializable value as a binary file. It is the
// general serialized-object format; exported struct fields round-trip.
type Msgpack[T any] struct{}

// Decode unmarshals the whole file into a T.
func (Msgpack[T]) Decode(path string) (T, error) {
	var v T
	data, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return v, err
	}
	return v, nil
}

// Encode marshals v and replaces the file with the result.
func (Msgpack[T]) Encode(v T, path string) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
