package config

// Format is the interface for a document syntax understood by a Store.
type Format interface {
	// Name is the short identifier of the format, e.g. "toml".
	Name() string
	// Ext is the file extension, without the leading dot, used to resolve a
	// document name to a file.
	Ext() string
	// Decode parses raw document bytes into nested Go values. Nested
	// mappings must be map[string]any. source is only used in diagnostics.
	Decode(source string, data []byte) (map[string]any, error)
}
