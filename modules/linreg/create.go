package linreg

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/vk/temples/internal/binder"
	"github.com/vk/temples/internal/table"
)

const (
	numFeatures    = 20
	numInformative = 5
)

// featureNames returns "a", "b", ... for n features.
func featureNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = string(rune('a' + i))
	}
	return names
}

// MakeRegression generates a random regression problem: standard normal
// features of which the first numInformative drive a linear target.
func MakeRegression(nSamples int, seed uint64) (table.Table, error) {
	if nSamples <= 0 {
		return table.Table{}, fmt.Errorf("n_samples must be positive, got %d", nSamples)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	coef := make([]float64, numInformative)
	for i := range coef {
		coef[i] = 100 * rng.Float64()
	}

	rows := make([][]float64, nSamples)
	for i := range rows {
		row := make([]float64, numFeatures+1)
		y := 0.0
		for j := 0; j < numFeatures; j++ {
			row[j] = rng.NormFloat64()
			if j < numInformative {
				y += coef[j] * row[j]
			}
		}
		row[numFeatures] = y
		rows[i] = row
	}

	columns := append(featureNames(numFeatures), TargetColumn)
	return table.FromFloats(columns, rows)
}

// createRegression builds the step that generates the raw data set. The
// n_samples and seed arguments default to the given settings.
func createRegression(defaultSamples int, defaultSeed uint64) *binder.Computation {
	return binder.New("create_regression", func(ctx context.Context, args binder.Args) (any, error) {
		n, err := binder.ArgOr(args, "n_samples", defaultSamples)
		if err != nil {
			return nil, err
		}
		seed, err := binder.ArgOr(args, "seed", defaultSeed)
		if err != nil {
			return nil, err
		}
		return MakeRegression(n, seed)
	}).WithDoc("Creates a fake regression data set with 20 features named a..t and a target column.")
}
