package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/temples/internal/ctxlog"
)

// Run executes the configured pipeline, or prints the registered pipelines
// in list mode.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.List {
		return a.list()
	}

	p, err := a.registry.Lookup(a.config.Pipeline)
	if err != nil {
		return err
	}
	if a.store == nil {
		return errors.New("no configuration root given")
	}

	a.logger.Debug("Building pipeline.", "pipeline", p.Name)
	run, err := p.Build(ctx, a.store)
	if err != nil {
		return fmt.Errorf("failed to build pipeline %q: %w", p.Name, err)
	}

	ctx = ctxlog.With(ctx, "pipeline", p.Name)
	if err := run(ctx); err != nil {
		return fmt.Errorf("pipeline %q failed: %w", p.Name, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) list() error {
	for _, name := range a.registry.Names() {
		p, err := a.registry.Lookup(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.outW, "%-14s %s\n", p.Name, p.Description); err != nil {
			return err
		}
	}
	return nil
}
