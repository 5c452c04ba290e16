package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(50)
	b := Generate(50)

	require.Equal(t, 50, a.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, a.At(i), b.At(i))
	}
	assert.Equal(t, "row-000000", a.At(0).ID)
	assert.NotEmpty(t, a.At(49).Title)
}

func TestGenerateNegativeCount(t *testing.T) {
	d := Generate(-5)
	assert.Equal(t, 0, d.Len())
}

func TestDatasetNilLen(t *testing.T) {
	var d *Dataset
	assert.Equal(t, 0, d.Len())
}

func TestLoadFileWithRowsKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.yaml")
	content := "rows:\n  - id: a\n    title: Alpha\n    kind: report\n    size: 10\n  - id: b\n    title: Beta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "Alpha", d.At(0).Title)
	assert.Equal(t, int64(10), d.At(0).Size)
	assert.Equal(t, "b", d.At(1).ID)
}

func TestLoadFileBareList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.yaml")
	content := "- id: a\n  title: Alpha\n- id: b\n  title: Beta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestLoadFileMissingTitle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.yaml")
	content := "rows:\n  - id: a\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing title")
}

func TestLoadFileMissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rows.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rows: {nope"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
