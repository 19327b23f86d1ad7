// Package linreg is the reference regression pipeline: it generates a raw
// data set, splits it into features and targets, and trains a ridge model.
//
// Artifact paths come from the "env" document (raw_data, features, targets,
// trained_model, optional table_format) and are resolved against the
// configuration root. Parameters come from the "settings" document:
//
//	[make_regression]
//	n_samples = 100
//	seed = 42
//
//	[ridge]
//	alpha = 1.0
package linreg

import (
	"context"

	"github.com/vk/temples/internal/binder"
	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/registry"
	"github.com/vk/temples/internal/runner"
)

// Name is the registry name of the pipeline.
const Name = "linreg"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the pipeline with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(&registry.Pipeline{
		Name:        Name,
		Description: "Generate regression data, split it and train a ridge model.",
		Build:       Build,
	})
}

// Steps are the bound computations of the pipeline, in run order.
type Steps struct {
	CreateRawData *binder.Computation
	Clean         *binder.Computation
	Train         *binder.Computation
}

// NewSteps reads the settings document and binds each computation to arts.
func NewSteps(ctx context.Context, store *config.Store, arts *Artifacts) (*Steps, error) {
	settings, err := store.Settings(ctx)
	if err != nil {
		return nil, err
	}
	nSamples, err := config.Value[int](settings, "make_regression", "n_samples")
	if err != nil {
		return nil, err
	}
	seed, err := config.ValueOr(settings, int64(0), "make_regression", "seed")
	if err != nil {
		return nil, err
	}
	alpha, err := config.Value[float64](settings, "ridge", "alpha")
	if err != nil {
		return nil, err
	}

	create := binder.Outputs(createRegression(nSamples, uint64(seed)), arts.RawData)

	cleaned := binder.Inputs(
		binder.Outputs(clean(arts.RawData.Schema()), arts.Features, arts.Targets),
		map[string]binder.Source{"raw_data": arts.RawData},
	)

	train := binder.Inputs(
		binder.Outputs(trainLinearRegression(alpha), arts.Model),
		map[string]binder.Source{"features": arts.Features, "targets": arts.Targets},
	)

	return &Steps{
		CreateRawData: runner.Log("Creating fake regression data", runner.Benchmark(create)),
		Clean:         runner.Log("Cleaning data", runner.Benchmark(cleaned)),
		Train:         runner.Log("Training linear regression model", runner.Benchmark(train)),
	}, nil
}

// Build wires the pipeline against store.
func Build(ctx context.Context, store *config.Store) (runner.Runnable, error) {
	arts, err := NewArtifacts(ctx, store)
	if err != nil {
		return nil, err
	}
	steps, err := NewSteps(ctx, store, arts)
	if err != nil {
		return nil, err
	}
	return runner.Sequence(steps.CreateRawData, steps.Clean, steps.Train), nil
}
