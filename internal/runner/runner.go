// Package runner executes bound computations one after another and adds
// logging and timing wrappers around them.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vk/temples/internal/binder"
	"github.com/vk/temples/internal/ctxlog"
)

// Runnable is a ready-to-run pipeline.
type Runnable func(ctx context.Context) error

// Sequence returns a Runnable that calls every step in order with no
// arguments. The first failing step aborts the run and its error is
// returned wrapped; later steps never run.
func Sequence(steps ...*binder.Computation) Runnable {
	return func(ctx context.Context) error {
		runID := uuid.New().String()
		ctx = ctxlog.With(ctx, "run_id", runID)
		logger := ctxlog.FromContext(ctx)

		total := len(steps)
		start := time.Now()
		logger.Info("🚀 Starting run", "steps", total)

		for i, step := range steps {
			logger.Info("▶️ Running step", "step", i+1, "total", total, "name", step.Name)
			if _, err := step.Call(ctx, nil); err != nil {
				logger.Error("❌ Step failed", "step", i+1, "total", total, "name", step.Name, "error", err)
				return fmt.Errorf("step %d/%d %q failed: %w", i+1, total, step.Name, err)
			}
		}

		logger.Info("🏁 Run finished", "steps", total, "elapsed", time.Since(start).String())
		return nil
	}
}
