package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/vk/temples/internal/ctxlog"
	"github.com/vk/temples/internal/fsutil"
)

// Codec is the storage-format-specific half of an artifact.
type Codec[T any] interface {
	// Decode reads the file at path into a value.
	Decode(path string) (T, error)
	// Encode writes value to path, replacing any existing file. The parent
	// directory already exists when Encode is called.
	Encode(value T, path string) error
}

// Resolver turns a configuration-relative path into an absolute one.
// *config.Store implements it.
type Resolver interface {
	Resolve(rel string) string
}

// Option configures a Data at construction time.
type Option func(*options)

type options struct {
	resolver Resolver
	schema   Schema
	name     string
}

// RelativeTo resolves the artifact location against the configuration root.
func RelativeTo(r Resolver) Option {
	return func(o *options) { o.resolver = r }
}

// WithSchema attaches an advisory schema.
func WithSchema(s Schema) Option {
	return func(o *options) { o.schema = s }
}

// WithName sets the name used in logs. It defaults to the file name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Data is one persisted unit of data: a file location, a lazily populated
// cache and the codec that moves values between the two.
type Data[T any] struct {
	name   string
	path   string
	codec  Codec[T]
	schema Schema

	cache  T
	loaded bool
}

// New creates an artifact for location. It does not touch the filesystem.
func New[T any](location string, codec Codec[T], opts ...Option) *Data[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	path := filepath.Clean(location)
	if o.resolver != nil {
		path = o.resolver.Resolve(location)
	} else if abs, err := filepath.Abs(location); err == nil {
		path = abs
	}

	name := o.name
	if name == "" {
		name = filepath.Base(path)
	}

	return &Data[T]{
		name:   name,
		path:   path,
		codec:  codec,
		schema: o.schema,
	}
}

// Name returns the artifact's log name.
func (d *Data[T]) Name() string { return d.name }

// Path returns the absolute location of the backing file.
func (d *Data[T]) Path() string { return d.path }

// Schema returns the advisory schema, if any.
func (d *Data[T]) Schema() Schema { return d.schema }

// Exists reports whether the backing file is present. The answer is never cached.
func (d *Data[T]) Exists() bool {
	return fsutil.Exists(d.path)
}

// Value returns the cached value and whether one is present.
func (d *Data[T]) Value() (T, bool) {
	return d.cache, d.loaded
}

// Set replaces the cached value without writing it.
func (d *Data[T]) Set(v T) {
	d.cache = v
	d.loaded = true
}

// Reset drops the cached value so the next Load reads storage again.
func (d *Data[T]) Reset() {
	var zero T
	d.cache = zero
	d.loaded = false
}

// Load returns the artifact's value, decoding the backing file only when
// nothing is cached yet.
func (d *Data[T]) Load(ctx context.Context) (T, error) {
	d.mustHaveCodec("load")
	logger := ctxlog.FromContext(ctx).With("artifact", d.name)

	if d.loaded {
		logger.Debug("Artifact already loaded, using cached value.", "path", d.path)
		return d.cache, nil
	}

	logger.Debug("Loading artifact from storage.", "path", d.path)
	v, err := d.codec.Decode(d.path)
	if err != nil {
		var zero T
		return zero, &StorageReadError{Path: d.path, Err: err}
	}

	d.Set(v)
	logger.Info("📥 Artifact loaded", "path", d.path)
	return v, nil
}

// Write persists the cached value, creating parent directories as needed
// and overwriting any existing file.
func (d *Data[T]) Write(ctx context.Context) error {
	d.mustHaveCodec("write")
	logger := ctxlog.FromContext(ctx).With("artifact", d.name)

	if !d.loaded {
		return &StorageWriteError{Path: d.path, Err: ErrNoValue}
	}
	if err := fsutil.EnsureParentDir(d.path); err != nil {
		return &StorageWriteError{Path: d.path, Err: err}
	}

	logger.Debug("Writing artifact to storage.", "path", d.path)
	if err := d.codec.Encode(d.cache, d.path); err != nil {
		return &StorageWriteError{Path: d.path, Err: err}
	}

	attrs := []any{"path", d.path}
	if info, err := os.Stat(d.path); err == nil {
		attrs = append(attrs, "size", humanize.Bytes(uint64(info.Size())))
	}
	logger.Info("💾 Artifact written", attrs...)
	return nil
}

// LoadAny is Load with an untyped result, for use by the binder.
func (d *Data[T]) LoadAny(ctx context.Context) (any, error) {
	return d.Load(ctx)
}

// SetAny is Set for an untyped value, for use by the binder.
func (d *Data[T]) SetAny(v any) error {
	t, ok := v.(T)
	if !ok {
		var zero T
		return fmt.Errorf("%w: artifact %q holds %T, got %T", ErrTypeMismatch, d.name, zero, v)
	}
	d.Set(t)
	return nil
}

// mustHaveCodec panics when the artifact was built without a codec. That
// is a programming error, not a runtime condition.
func (d *Data[T]) mustHaveCodec(op string) {
	if d.codec == nil {
		panic(fmt.Errorf("%w: cannot %s artifact %q (%s)", ErrUnimplemented, op, d.name, d.path))
	}
}
