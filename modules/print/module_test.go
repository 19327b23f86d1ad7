package print

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/temples/internal/config"
	"github.com/vk/temples/internal/registry"
	"github.com/vk/temples/internal/testutil"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	lines := Flatten(map[string]any{
		"raw_data": "data/raw.csv",
		"ridge":    map[string]any{"alpha": 0.5},
	})

	assert.Equal(t, []string{`raw_data = "data/raw.csv"`, `ridge.alpha = 0.5`}, lines)
}

func TestShowConfig_PrintsDocuments(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"env.toml":      `raw_data = "data/raw.csv"`,
		"settings.toml": "[ridge]\nalpha = 0.5\n",
		"empty.toml":    "",
	})
	store, err := config.NewStore(root)
	require.NoError(t, err)

	var out bytes.Buffer
	r := registry.New()
	(&Module{Out: &out}).Register(r)
	p, err := r.Lookup(Name)
	require.NoError(t, err)

	ctx, _ := testutil.LogContext(t)

	// --- Act ---
	run, err := p.Build(ctx, store)
	require.NoError(t, err)
	require.NoError(t, run(ctx))

	// --- Assert ---
	s := out.String()
	assert.Contains(t, s, "# empty (")
	assert.Contains(t, s, "(empty)")
	assert.Contains(t, s, `raw_data = "data/raw.csv"`)
	assert.Contains(t, s, "ridge.alpha = 0.5")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("# env")), bytes.Index(out.Bytes(), []byte("# settings")))
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestShowConfig_FailsOnWriteError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := testutil.WriteFiles(t, t.TempDir(), map[string]string{
		"settings.toml": "[ridge]\nalpha = 0.5\n",
	})
	store, err := config.NewStore(root)
	require.NoError(t, err)

	cause := errors.New("stdout closed")
	r := registry.New()
	(&Module{Out: failingWriter{err: cause}}).Register(r)
	p, err := r.Lookup(Name)
	require.NoError(t, err)
	ctx, _ := testutil.LogContext(t)

	// --- Act ---
	run, err := p.Build(ctx, store)
	require.NoError(t, err)
	err = run(ctx)

	// --- Assert ---
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `printing config "settings"`)
}
