// Package artifact implements persisted data units with a lazy in-memory
// cache and a pluggable storage codec.
//
// A Data[T] owns one file. Load decodes the file the first time it is called
// and afterwards hands back the cached value without touching storage; Write
// creates any missing parent directories and encodes the cached value,
// replacing whatever was there. Exists always asks the filesystem.
//
// The storage format is supplied by a Codec[T], which only has to decode a
// file into a T and encode a T into a file. Caching, directory creation,
// existence checks and logging live in Data and are shared by every codec.
// The package ships three codecs: CSV and SQLite for table.Table values and
// Msgpack for arbitrary serializable values.
//
// Artifacts are not safe for concurrent use. Construct one Data per file and
// pass it to the computations that need it.
package artifact
