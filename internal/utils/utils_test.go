package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverage(t *testing.T) {
	assert.Equal(t, 2.5, Average([]int{1, 2, 3, 4}))
	assert.Equal(t, 0., Average([]float64{}))
	assert.Equal(t, 10, SumSlice([]int{1, 2, 3, 4}))
}

func TestSignChange(t *testing.T) {
	f := func(x float64) (float64, error) { return x - 1, nil }

	ok, err := SignChange(f, 0, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = SignChange(f, 2, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = SignChange(f, 1, 3)
	require.NoError(t, err)
	assert.True(t, ok, "a zero endpoint counts")

	broken := errors.New("broken")
	_, err = SignChange(func(float64) (float64, error) { return 0, broken }, 0, 1)
	assert.ErrorIs(t, err, broken)
}

func TestWriteAsCSVNaturalOrder(t *testing.T) {
	dir, err := OutputPath(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	data := CSV{
		{"run_10", "b"},
		{"run_2", "a"},
		{"run_1", "c"},
	}
	require.NoError(t, WriteAsCSV(data, false, dir, "summary", "roots.toml", []string{"name", "value"}))

	content, err := os.ReadFile(dir + "roots_summary.txt")
	require.NoError(t, err)
	assert.Equal(t, "name,value\nrun_1,c\nrun_2,a\nrun_10,b\n", string(content))
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir() + "/"

	f, err := OpenFile(true, dir, "trace", "bisection_1")
	require.NoError(t, err)
	f.Close()
	assert.FileExists(t, dir+"trace/bisection_1.txt")

	f, err = OpenFile(false, dir, "trace", "bisection_1")
	require.NoError(t, err)
	f.Close()
	assert.FileExists(t, dir+"bisection_1_trace.txt")

	f, err = OpenFile(false, dir, "", "output")
	require.NoError(t, err)
	f.Close()
	assert.FileExists(t, dir+"output.txt")
}

func TestNaturalOrder(t *testing.T) {
	names := []string{"f1_10", "f1_9", "f1_1"}
	NaturalOrder(names)
	assert.Equal(t, []string{"f1_1", "f1_9", "f1_10"}, names)
}

func TestGetFilename(t *testing.T) {
	assert.Equal(t, "roots", GetFilename("/tmp/x/roots.toml"))
}
