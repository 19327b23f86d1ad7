package artifact

import (
	"fmt"

	"github.com/vk/temples/internal/table"
)

// Field describes one column or attribute of an artifact's in-memory value.
type Field struct {
	Name string
	Type string // e.g. "float", "int", "string"
}

// Schema is an advisory description of an artifact's value. Data never
// enforces it; computations may call Check on the values they consume.
type Schema []Field

// Names returns the field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Check reports the first schema field missing from t.
func (s Schema) Check(t table.Table) error {
	if t.HasColumns(s.Names()...) {
		return nil
	}
	for _, f := range s {
		if t.Index(f.Name) < 0 {
			return fmt.Errorf("%w: column %q missing", ErrTypeMismatch, f.Name)
		}
	}
	return nil
}
