package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadGrid(t *testing.T) {
	t.Parallel()

	t.Run("loads a well-formed grid row-major", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "grid.csv", "1,2,3\n4,5,6\n")

		g, err := LoadGrid(path, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, g.Rows)
		assert.Equal(t, 3, g.Cols)
		if diff := cmp.Diff([]int{1, 2, 3, 4, 5, 6}, g.Cells); diff != "" {
			t.Errorf("cells mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 6, g.At(1, 2))
	})

	t.Run("converts cells to floats row-major", func(t *testing.T) {
		t.Parallel()
		g := &Grid{Rows: 2, Cols: 2, Cells: []int{0, 1, 2, 3}}
		assert.Equal(t, []float64{0, 1, 2, 3}, g.Floats())
	})

	t.Run("rejects wrong row count", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "grid.csv", "1,2,3\n")

		_, err := LoadGrid(path, 2, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 2 rows")
	})

	t.Run("rejects wrong column count", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "grid.csv", "1,2\n3,4\n")

		_, err := LoadGrid(path, 2, 3)
		assert.Error(t, err)
	})

	t.Run("rejects non-integer cells", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "grid.csv", "1,x,3\n4,5,6\n")

		_, err := LoadGrid(path, 2, 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid count")
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadGrid(filepath.Join(t.TempDir(), "absent.csv"), 16, 16)
		assert.Error(t, err)
	})
}

func TestLoadSequence(t *testing.T) {
	t.Parallel()

	t.Run("loads one value per line", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "seq.csv", "1.5\n2.25\n0.75\n")

		xs, err := LoadSequence(path)
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5, 2.25, 0.75}, xs)
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "seq.csv", "1.5\nnope\n")

		_, err := LoadSequence(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid value")
	})

	t.Run("returns empty slice for empty file", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "seq.csv", "")

		xs, err := LoadSequence(path)
		require.NoError(t, err)
		assert.Empty(t, xs)
	})

	t.Run("fails on missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadSequence(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
	})
}
