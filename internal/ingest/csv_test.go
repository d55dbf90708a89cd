package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brix/internal/ingest"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFileBasic(t *testing.T) {
	path := writeCSV(t, "basic.csv", "1,2,3\n4,5,6\n")

	tb, err := ingest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Rows)
	assert.Equal(t, 3, tb.Cols)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, tb.Data)
}

func TestFirstLineFixesColumnCount(t *testing.T) {
	// Short rows leave trailing zeros; long rows drop extras.
	path := writeCSV(t, "ragged.csv", "1,2,3\n4,5\n6,7,8,9\n")

	tb, err := ingest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tb.Rows)
	assert.Equal(t, 3, tb.Cols)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 0, 6, 7, 8}, tb.Data)
}

func TestUnparseableFieldsReadAsZero(t *testing.T) {
	path := writeCSV(t, "messy.csv", "1.5, x ,3\nnan?,2,\n")

	tb, err := ingest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 0, 3, 0, 2, 0}, tb.Data)
}

func TestShortLinesAreSkipped(t *testing.T) {
	// A lone character does not count as a data row.
	path := writeCSV(t, "blank.csv", "1,2\n\n3,4\nx\n")

	tb, err := ingest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Rows)
	assert.Equal(t, []float64{1, 2, 3, 4}, tb.Data)
}

func TestEmptyFile(t *testing.T) {
	path := writeCSV(t, "empty.csv", "")

	tb, err := ingest.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, tb.Rows)
	assert.Equal(t, 0, tb.Cols)
	assert.Empty(t, tb.Data)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ingest.ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ingest: cannot open")
}

func TestReadAllPreservesInputOrder(t *testing.T) {
	paths := []string{
		writeCSV(t, "a.csv", "1,1\n"),
		writeCSV(t, "b.csv", "2,2\n"),
		writeCSV(t, "c.csv", "3,3\n"),
	}

	tables, err := ingest.ReadAll(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, tables, 3)
	for i, tb := range tables {
		assert.Equal(t, paths[i], tb.Path)
		assert.Equal(t, float64(i+1), tb.Data[0])
	}
}

func TestReadAllFailsOnAnyMissingFile(t *testing.T) {
	paths := []string{
		writeCSV(t, "ok.csv", "1\n"),
		filepath.Join(t.TempDir(), "missing.csv"),
	}
	_, err := ingest.ReadAll(context.Background(), paths)
	require.Error(t, err)
}
