package linreg

import (
	"context"
	"fmt"

	"github.com/vk/temples/internal/artifact"
	"github.com/vk/temples/internal/binder"
	"github.com/vk/temples/internal/table"
)

// Split separates the target column from the features.
func Split(raw table.Table) (features, targets table.Table, err error) {
	features, err = raw.Drop(TargetColumn)
	if err != nil {
		return table.Table{}, table.Table{}, err
	}
	targets, err = raw.Select(TargetColumn)
	if err != nil {
		return table.Table{}, table.Table{}, err
	}
	return features, targets, nil
}

// clean builds the step that splits the raw data into features and targets.
// It returns a Tuple so that Outputs can route each half to its artifact.
func clean(schema artifact.Schema) *binder.Computation {
	return binder.New("clean", func(ctx context.Context, args binder.Args) (any, error) {
		raw, err := binder.Arg[table.Table](args, "raw_data")
		if err != nil {
			return nil, err
		}
		if err := schema.Check(raw); err != nil {
			return nil, fmt.Errorf("raw data: %w", err)
		}
		features, targets, err := Split(raw)
		if err != nil {
			return nil, err
		}
		return binder.Tuple{features, targets}, nil
	}).WithDoc("Cleans raw data and splits it into features and targets.")
}
