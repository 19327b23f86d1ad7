// Package config resolves configuration documents and config-relative paths
// for pipeline programs.
//
// A Store is bound to a single configuration root directory, normally taken
// from the TEMPLE_CONFIG environment variable. Documents are looked up by
// logical name ("env", "settings", ...) and resolve to <root>/<name>.<ext>,
// where the extension is chosen by the Store's Format. A document whose file
// does not exist is empty rather than an error; looking up a key that is not
// there fails with ErrKeyNotFound.
//
// Documents are read once and cached for the lifetime of the Store. There is
// no write path. The Format interface keeps the Store independent of the file
// syntax; TOML and JSON live here, HCL is provided by the hcl_adapter package.
package config
