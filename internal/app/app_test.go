package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/registry"
	"github.com/vk/temples/internal/runner"
	"github.com/vk/temples/internal/testutil"
	"github.com/vk/temples/modules/linreg"
)

type stubModule struct {
	name  string
	calls *int
	err   error
}

func (m stubModule) Register(r *registry.Registry) {
	r.Register(&registry.Pipeline{
		Name:        m.name,
		Description: "stub",
		Build: func(ctx context.Context, store *config.Store) (runner.Runnable, error) {
			return func(ctx context.Context) error {
				*m.calls++
				return m.err
			}, nil
		},
	})
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{ConfigRoot: "conf", Pipeline: "linreg"}},
		{name: "list needs nothing", cfg: Config{List: true}},
		{name: "missing pipeline", cfg: Config{ConfigRoot: "conf"}, wantErr: "pipeline name is required"},
		{name: "missing root", cfg: Config{Pipeline: "linreg"}, wantErr: "ConfigRoot is required"},
		{name: "bad format", cfg: Config{ConfigRoot: "conf", Pipeline: "linreg", ConfigFormat: "yaml"}, wantErr: "unknown config format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewConfig(tc.cfg)

			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "toml", cfg.ConfigFormat)
		})
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"toml", "json", "hcl"} {
		f, err := formatFor(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.Name())
	}

	_, err := formatFor("ini")
	require.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestNewApp_RegistersCoreModules(t *testing.T) {
	t.Parallel()

	a, err := NewApp(&bytes.Buffer{}, &Config{List: true, LogLevel: "debug"})

	require.NoError(t, err)
	assert.Equal(t, []string{"linreg", "show-config"}, a.Registry().Names())
	assert.Nil(t, a.Store())
}

func TestRun_ListsPipelines(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	a, err := NewApp(out, &Config{List: true, LogLevel: "error"})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "linreg")
	assert.Contains(t, out.String(), "show-config")
}

func TestRun_UnknownPipeline(t *testing.T) {
	t.Parallel()

	calls := 0
	a, err := NewApp(&bytes.Buffer{}, &Config{ConfigRoot: t.TempDir(), Pipeline: "missing"},
		stubModule{name: "stub", calls: &calls})
	require.NoError(t, err)

	err = a.Run(context.Background())

	require.ErrorIs(t, err, registry.ErrUnknownPipeline)
	assert.Equal(t, 0, calls)
}

func TestRun_WrapsPipelineFailure(t *testing.T) {
	t.Parallel()

	calls := 0
	cause := assert.AnError
	a, err := NewApp(&bytes.Buffer{}, &Config{ConfigRoot: t.TempDir(), Pipeline: "stub"},
		stubModule{name: "stub", calls: &calls, err: cause})
	require.NoError(t, err)

	err = a.Run(context.Background())

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `pipeline "stub" failed`)
	assert.Equal(t, 1, calls)
}

func TestRun_LinregFromJSONConfig(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"env.json": `{
			"raw_data": "data/raw.csv",
			"features": "data/features.csv",
			"targets": "data/targets.csv",
			"trained_model": "models/ridge.msgpack"
		}`,
		"settings.json": `{"make_regression": {"n_samples": 40, "seed": 3}, "ridge": {"alpha": 0.1}}`,
	})
	logs := &testutil.SafeBuffer{}
	a, err := NewApp(logs, &Config{
		ConfigRoot:   root,
		ConfigFormat: "json",
		Pipeline:     linreg.Name,
		LogLevel:     "debug",
		LogFormat:    "json",
	})
	require.NoError(t, err)

	// --- Act ---
	err = a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	for _, rel := range []string{"data/raw.csv", "data/features.csv", "data/targets.csv", "models/ridge.msgpack"} {
		assert.FileExists(t, a.Store().Resolve(rel))
	}
	assert.Contains(t, logs.String(), `"pipeline":"linreg"`)
}

func TestRun_ShowConfigFromHCL(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"settings.hcl": "ridge {\n  alpha = 0.5\n}\n",
	})
	out := &bytes.Buffer{}
	a, err := NewApp(out, &Config{ConfigRoot: root, ConfigFormat: "hcl", Pipeline: "show-config", LogLevel: "error"})
	require.NoError(t, err)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "# settings (")
	assert.Contains(t, out.String(), "ridge.alpha = 0.5")
}
