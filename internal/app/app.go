package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/ctxlog"
	"github.com/vk/temples/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	store    *config.Store
	config   *Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// With no modules the core modules are registered.
func NewApp(outW io.Writer, cfg *Config, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var store *config.Store
	if cfg.ConfigRoot != "" {
		format, err := formatFor(cfg.ConfigFormat)
		if err != nil {
			return nil, err
		}
		store, err = config.NewStore(cfg.ConfigRoot, config.WithFormat(format))
		if err != nil {
			return nil, fmt.Errorf("failed to open configuration: %w", err)
		}
		logger.Debug("Configuration store opened.", "root", store.Root(), "format", format.Name())
	}

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(outW)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		// A broken module is a programmer error, so we panic.
		panic(err)
	}
	logger.Debug("Registry validation passed.", "pipelines", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		store:    store,
		config:   cfg,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Store returns the configuration store, or nil when no root was given.
func (a *App) Store() *config.Store {
	return a.store
}
