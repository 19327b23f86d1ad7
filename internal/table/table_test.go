package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesShape(t *testing.T) {
	t.Parallel()

	_, err := New([]string{"a", "b"}, []string{"1"})
	require.Error(t, err)

	_, err = New([]string{"a", "a"})
	require.Error(t, err)

	tbl, err := New([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.NotNil(t, tbl.Rows)
}

func TestFromFloats_RoundTrip(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rows := [][]float64{{1.5, -2}, {0.1, 3e10}}

	// --- Act ---
	tbl, err := FromFloats([]string{"x", "y"}, rows)
	require.NoError(t, err)
	got, err := tbl.Floats()

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Equal(t, []string{"1.5", "-2"}, tbl.Rows[0])
}

func TestSelectAndDrop(t *testing.T) {
	t.Parallel()

	tbl, err := New([]string{"a", "b", "target"},
		[]string{"1", "2", "3"},
		[]string{"4", "5", "6"},
	)
	require.NoError(t, err)

	features, err := tbl.Drop("target")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, features.Columns)
	assert.Equal(t, [][]string{{"1", "2"}, {"4", "5"}}, features.Rows)

	targets, err := tbl.Select("target")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3"}, {"6"}}, targets.Rows)

	// The source table is untouched.
	assert.Equal(t, []string{"a", "b", "target"}, tbl.Columns)

	_, err = tbl.Drop("missing")
	require.Error(t, err)
}

func TestColumnFloats(t *testing.T) {
	t.Parallel()

	tbl, err := New([]string{"target", "label"},
		[]string{"1.25", "x"},
		[]string{"-3", "y"},
	)
	require.NoError(t, err)

	vals, err := tbl.ColumnFloats("target")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.25, -3}, vals)

	_, err = tbl.ColumnFloats("label")
	require.Error(t, err)

	assert.True(t, tbl.HasColumns("target", "label"))
	assert.False(t, tbl.HasColumns("target", "nope"))
}
