package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/temples/internal/ctxlog"
)

// ValidateRegistry checks that every registered pipeline can be built.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		p := r.pipelines[name]
		if name == "" {
			errs = append(errs, "a pipeline is registered with an empty name")
		}
		if p.Build == nil {
			errs = append(errs, fmt.Sprintf("pipeline '%s' has no builder", name))
		}
		if p.Description == "" {
			logger.Warn("Pipeline has no description.", "pipeline", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
