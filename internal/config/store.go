package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vk/temples/internal/ctxlog"
	"github.com/vk/temples/internal/fsutil"
)

// RootEnv names the environment variable that designates the configuration
// root directory.
const RootEnv = "TEMPLE_CONFIG"

// Well-known document names.
const (
	EnvDocument      = "env"
	SettingsDocument = "settings"
)

// Option configures a Store.
type Option func(*Store)

// WithFormat selects the document syntax. The default is TOML.
func WithFormat(f Format) Option {
	return func(s *Store) {
		if f != nil {
			s.format = f
		}
	}
}

// Store loads configuration documents from a single root directory. It is
// constructed once at process start and is read-only afterwards.
type Store struct {
	root   string
	format Format

	mu   sync.Mutex
	docs map[string]*Document
}

// NewStore creates a store rooted at root. An empty root fails with
// ErrMissingConfigRoot.
func NewStore(root string, opts ...Option) (*Store, error) {
	if root == "" {
		return nil, ErrMissingConfigRoot
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving config root %s: %w", root, err)
	}

	s := &Store{
		root:   abs,
		format: TOML{},
		docs:   make(map[string]*Document),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewStoreFromEnv creates a store rooted at the directory named by RootEnv.
func NewStoreFromEnv(opts ...Option) (*Store, error) {
	root, ok := os.LookupEnv(RootEnv)
	if !ok || root == "" {
		return nil, fmt.Errorf("%w: $%s is empty", ErrMissingConfigRoot, RootEnv)
	}
	return NewStore(root, opts...)
}

// Root returns the absolute configuration root.
func (s *Store) Root() string { return s.root }

// Format returns the document syntax used by the store.
func (s *Store) Format() Format { return s.format }

// Resolve turns a path relative to the configuration root into an absolute
// path. Absolute paths are returned cleaned but otherwise unchanged.
func (s *Store) Resolve(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(s.root, rel)
}

// DocumentPath returns the file backing the named document.
func (s *Store) DocumentPath(name string) string {
	return filepath.Join(s.root, name+"."+s.format.Ext())
}

// Load returns the named document, reading its file on first use only. A
// missing file yields an empty document.
func (s *Store) Load(ctx context.Context, name string) (*Document, error) {
	if name == "" {
		return nil, ErrInvalidName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if doc, ok := s.docs[name]; ok {
		return doc, nil
	}

	logger := ctxlog.FromContext(ctx).With("document", name)
	path := s.DocumentPath(name)

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		logger.Debug("Config file not found, using empty document.", "path", path)
		doc := NewDocument(name, nil)
		s.docs[name] = doc
		return doc, nil
	}

	values, err := s.format.Decode(path, data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	doc := NewDocument(name, values)
	s.docs[name] = doc
	logger.Debug("Config document loaded.", "path", path, "keys", doc.Len())
	return doc, nil
}

// Env returns the "env" document holding paths and environment values.
func (s *Store) Env(ctx context.Context) (*Document, error) {
	return s.Load(ctx, EnvDocument)
}

// Settings returns the "settings" document holding tunable parameters.
func (s *Store) Settings(ctx context.Context) (*Document, error) {
	return s.Load(ctx, SettingsDocument)
}

// Documents lists the names of the documents present under the root.
func (s *Store) Documents() ([]string, error) {
	return fsutil.ListFilesByExtension(s.root, "."+s.format.Ext())
}
