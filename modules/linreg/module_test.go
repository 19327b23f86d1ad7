package linreg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/temples/internal/artifact"
	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/registry"
	"github.com/vk/temples/internal/table"
	"github.com/vk/temples/internal/testutil"
)

const testEnv = `
raw_data      = "data/raw.csv"
features      = "data/clean/features.csv"
targets       = "data/clean/targets.csv"
trained_model = "models/ridge.msgpack"
`

const testSettings = `
[make_regression]
n_samples = 60
seed = 7

[ridge]
alpha = 0.01
`

func newStore(t *testing.T, env string) *config.Store {
	t.Helper()
	root := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"env.toml":      env,
		"settings.toml": testSettings,
	})
	store, err := config.NewStore(root)
	require.NoError(t, err)
	return store
}

func TestBuild_RunsPipelineEndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, logs := testutil.LogContext(t)
	store := newStore(t, testEnv)

	run, err := Build(ctx, store)
	require.NoError(t, err)

	// --- Act ---
	err = run(ctx)

	// --- Assert ---
	require.NoError(t, err)

	// Fresh artifacts read everything back from disk.
	arts, err := NewArtifacts(context.Background(), store)
	require.NoError(t, err)
	for _, a := range []interface{ Exists() bool }{arts.RawData, arts.Features, arts.Targets, arts.Model} {
		assert.True(t, a.Exists())
	}

	raw, err := arts.RawData.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, raw.Len())
	assert.Len(t, raw.Columns, numFeatures+1)

	features, err := arts.Features.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, featureNames(numFeatures), features.Columns)

	targets, err := arts.Targets.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{TargetColumn}, targets.Columns)

	model, err := arts.Model.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, model.Weights, numFeatures)
	assert.Equal(t, 0.01, model.Alpha)
	assert.Equal(t, featureNames(numFeatures), model.Features)

	X, err := features.Floats()
	require.NoError(t, err)
	y, err := targets.ColumnFloats(TargetColumn)
	require.NoError(t, err)
	assert.Greater(t, R2(y, model.Predict(X)), 0.99, "noise-free data must be fit almost perfectly")

	out := logs.String()
	assert.Contains(t, out, "Creating fake regression data")
	assert.Contains(t, out, "Cleaning data")
	assert.Contains(t, out, "Training linear regression model")
	assert.Contains(t, out, "already loaded", "later steps reuse the cache filled by earlier ones")
}

func TestBuild_SQLiteTables(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.LogContext(t)
	store := newStore(t, `
raw_data      = "data/raw.sqlite"
features      = "data/features.sqlite"
targets       = "data/targets.sqlite"
trained_model = "models/ridge.msgpack"
table_format  = "sqlite"
`)

	run, err := Build(ctx, store)
	require.NoError(t, err)
	require.NoError(t, run(ctx))

	arts, err := NewArtifacts(ctx, store)
	require.NoError(t, err)
	raw, err := arts.RawData.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, raw.Len())
}

func TestNewArtifacts_MissingEnvKey(t *testing.T) {
	t.Parallel()

	store := newStore(t, `raw_data = "data/raw.csv"`)

	_, err := NewArtifacts(context.Background(), store)
	require.ErrorIs(t, err, config.ErrKeyNotFound)
}

func TestNewArtifacts_UnknownTableFormat(t *testing.T) {
	t.Parallel()

	store := newStore(t, testEnv+`table_format = "parquet"`+"\n")

	_, err := NewArtifacts(context.Background(), store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parquet")
}

func TestClean_RejectsRawDataWithoutTarget(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, _ := testutil.LogContext(t)
	store := newStore(t, testEnv)
	arts, err := NewArtifacts(ctx, store)
	require.NoError(t, err)
	steps, err := NewSteps(ctx, store, arts)
	require.NoError(t, err)

	bad, err := table.New([]string{"a"}, []string{"1"})
	require.NoError(t, err)
	arts.RawData.Set(bad)

	// --- Act ---
	_, err = steps.Clean.Call(ctx, nil)

	// --- Assert ---
	require.ErrorIs(t, err, artifact.ErrTypeMismatch)
	assert.False(t, arts.Features.Exists())
	assert.Equal(t, "clean", steps.Clean.Name)
}

func TestMakeRegression_IsDeterministicPerSeed(t *testing.T) {
	t.Parallel()

	a, err := MakeRegression(5, 1)
	require.NoError(t, err)
	b, err := MakeRegression(5, 1)
	require.NoError(t, err)
	c, err := MakeRegression(5, 2)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	_, err = MakeRegression(0, 1)
	require.Error(t, err)
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	r := registry.New()
	(&Module{}).Register(r)

	p, err := r.Lookup(Name)
	require.NoError(t, err)
	assert.NotNil(t, p.Build)
}
