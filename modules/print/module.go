// Package print provides the "show-config" pipeline, which prints every
// configuration document under the root as flattened key = value lines.
package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/vk/temples/internal/binder"
	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/ctxlog"
	"github.com/vk/temples/internal/registry"
	"github.com/vk/temples/internal/runner"
)

// Name is the registry name of the pipeline.
const Name = "show-config"

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out receives the printed documents. Nil means os.Stdout.
	Out io.Writer
}

// Register registers the pipeline with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Pipeline{
		Name:        Name,
		Description: "Print every configuration document under the configuration root.",
		Build:       m.build,
	})
}

func (m *Module) build(ctx context.Context, store *config.Store) (runner.Runnable, error) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}

	names, err := store.Documents()
	if err != nil {
		return nil, fmt.Errorf("listing config documents: %w", err)
	}

	steps := make([]*binder.Computation, 0, len(names))
	for _, name := range names {
		steps = append(steps, printDocument(store, name, out))
	}
	return runner.Sequence(steps...), nil
}

// printDocument builds a step printing one document.
func printDocument(store *config.Store, name string, out io.Writer) *binder.Computation {
	return binder.New("print_"+name, func(ctx context.Context, args binder.Args) (any, error) {
		doc, err := store.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		ctxlog.FromContext(ctx).Debug("Printing config document.", "document", name, "keys", doc.Len())

		lines := Flatten(doc.Map())
		if len(lines) == 0 {
			lines = []string{"(empty)"}
		}
		if _, err := fmt.Fprintf(out, "# %s (%s)\n", name, store.DocumentPath(name)); err != nil {
			return nil, fmt.Errorf("printing config %q: %w", name, err)
		}
		for _, l := range lines {
			if _, err := fmt.Fprintf(out, "      %s\n", l); err != nil {
				return nil, fmt.Errorf("printing config %q: %w", name, err)
			}
		}
		return nil, nil
	})
}

// Flatten renders nested mappings as sorted "a.b = value" lines.
func Flatten(m map[string]any) []string {
	var lines []string
	flattenInto(&lines, "", m)
	sort.Strings(lines)
	return lines
}

func flattenInto(lines *[]string, prefix string, m map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(lines, key, nested)
			continue
		}
		*lines = append(*lines, fmt.Sprintf("%s = %#v", key, v))
	}
}
