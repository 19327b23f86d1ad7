package linreg

import (
	"context"

	"github.com/vk/temples/internal/binder"
	"github.com/vk/temples/internal/ctxlog"
	"github.com/vk/temples/internal/table"
)

// Train fits a ridge model on a feature table and a single-column target table.
func Train(features, targets table.Table, alpha float64) (Ridge, error) {
	X, err := features.Floats()
	if err != nil {
		return Ridge{}, err
	}
	y, err := targets.ColumnFloats(TargetColumn)
	if err != nil {
		return Ridge{}, err
	}

	model, err := FitRidge(X, y, alpha)
	if err != nil {
		return Ridge{}, err
	}
	model.Features = append([]string(nil), features.Columns...)
	return model, nil
}

// trainLinearRegression builds the training step. alpha defaults to the
// ridge.alpha setting.
func trainLinearRegression(defaultAlpha float64) *binder.Computation {
	return binder.New("train_linear_regression", func(ctx context.Context, args binder.Args) (any, error) {
		features, err := binder.Arg[table.Table](args, "features")
		if err != nil {
			return nil, err
		}
		targets, err := binder.Arg[table.Table](args, "targets")
		if err != nil {
			return nil, err
		}
		alpha, err := binder.ArgOr(args, "alpha", defaultAlpha)
		if err != nil {
			return nil, err
		}

		model, err := Train(features, targets, alpha)
		if err != nil {
			return nil, err
		}

		X, _ := features.Floats()
		y, _ := targets.ColumnFloats(TargetColumn)
		ctxlog.FromContext(ctx).Info("Model trained.",
			"alpha", alpha,
			"samples", len(y),
			"r2", R2(y, model.Predict(X)),
		)
		return model, nil
	}).WithDoc("Trains a ridge regression model on the given data and returns the model.")
}
