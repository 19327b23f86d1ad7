package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/runner"
)

// ErrUnknownPipeline indicates a lookup for a name nobody registered.
var ErrUnknownPipeline = errors.New("unknown pipeline")

// Module is the interface that all pipeline modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Builder wires a pipeline's artifacts against the configuration store and
// returns the runnable sequence.
type Builder func(ctx context.Context, store *config.Store) (runner.Runnable, error)

// Pipeline is one registered, named pipeline.
type Pipeline struct {
	Name        string
	Description string
	Build       Builder
}

// Registry holds all registered pipelines for a single application instance.
type Registry struct {
	pipelines map[string]*Pipeline
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{pipelines: make(map[string]*Pipeline)}
}

// Register adds a pipeline. Registering the same name twice is a
// programming error and panics.
func (r *Registry) Register(p *Pipeline) {
	if _, exists := r.pipelines[p.Name]; exists {
		panic(fmt.Sprintf("registry: pipeline %q registered twice", p.Name))
	}
	r.pipelines[p.Name] = p
}

// Lookup returns the named pipeline.
func (r *Registry) Lookup(name string) (*Pipeline, error) {
	p, ok := r.pipelines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPipeline, name, r.Names())
	}
	return p, nil
}

// Names returns every registered pipeline name, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pipelines))
	for name := range r.pipelines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered pipelines.
func (r *Registry) Len() int { return len(r.pipelines) }
