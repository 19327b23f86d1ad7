package runner

import (
	"context"
	"time"

	"github.com/vk/temples/internal/binder"
	"github.com/vk/temples/internal/ctxlog"
)

// Log returns a computation that logs message at info level before each call.
func Log(message string, c *binder.Computation) *binder.Computation {
	return c.Wrap(func(ctx context.Context, args binder.Args) (any, error) {
		ctxlog.FromContext(ctx).Info(message, "computation", c.Name)
		return c.Call(ctx, args)
	})
}

// Benchmark returns a computation that logs how long each call took,
// whether or not it succeeded.
func Benchmark(c *binder.Computation) *binder.Computation {
	return c.Wrap(func(ctx context.Context, args binder.Args) (any, error) {
		start := time.Now()
		result, err := c.Call(ctx, args)
		ctxlog.FromContext(ctx).Info("⏱️ Computation timed",
			"computation", c.Name,
			"elapsed", time.Since(start).String(),
			"failed", err != nil,
		)
		return result, err
	})
}
