package activity_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zktuong/scFunctions/activity"
)

const matrixCSV = `regulon,c1,c2,c3
Sox2,0.1,0.2,0.9
Pax6,0.8,0.7,0.05
`

// TestReadMatrix_CSV parses the standard AUC export layout.
func TestReadMatrix_CSV(t *testing.T) {
	m, err := activity.ReadMatrix(strings.NewReader(matrixCSV), ',')
	require.NoError(t, err)

	assert.Equal(t, []string{"Sox2", "Pax6"}, m.Regulons())
	assert.Equal(t, []string{"c1", "c2", "c3"}, m.Cells())

	v, err := m.Score("Pax6", "c3")
	require.NoError(t, err)
	assert.Equal(t, 0.05, v)
}

// TestReadMatrix_Malformed covers empty input, a header-only width problem
// and a non-numeric field.
func TestReadMatrix_Malformed(t *testing.T) {
	_, err := activity.ReadMatrix(strings.NewReader(""), ',')
	assert.ErrorIs(t, err, activity.ErrMalformedTable, "empty input")

	_, err = activity.ReadMatrix(strings.NewReader("regulon\n"), ',')
	assert.ErrorIs(t, err, activity.ErrMalformedTable, "no cell columns")

	bad := "regulon,c1\nSox2,abc\n"
	_, err = activity.ReadMatrix(strings.NewReader(bad), ',')
	assert.ErrorIs(t, err, activity.ErrMalformedTable, "non-numeric score")
}

// TestReadAnnotations_HeaderSkip ensures a recognizable header line is
// skipped and a bare table is accepted as-is.
func TestReadAnnotations_HeaderSkip(t *testing.T) {
	withHeader := "cell,cell_type\nc1,T\nc2,B\n"
	a, err := activity.ReadAnnotations(strings.NewReader(withHeader), ',')
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())

	bare := "c1,T\nc2,B\n"
	a, err = activity.ReadAnnotations(strings.NewReader(bare), ',')
	require.NoError(t, err)
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []string{"T", "B"}, a.Types())
}

// TestWriteMatrix_RoundTrip writes a matrix and reads it back.
func TestWriteMatrix_RoundTrip(t *testing.T) {
	m, err := activity.ReadMatrix(strings.NewReader(matrixCSV), ',')
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, activity.WriteMatrix(&buf, m))

	back, err := activity.ReadMatrix(&buf, ',')
	require.NoError(t, err)
	assert.Equal(t, m.Regulons(), back.Regulons())
	assert.Equal(t, m.Cells(), back.Cells())
	assert.Equal(t, m.RowAt(0), back.RowAt(0))
	assert.Equal(t, m.RowAt(1), back.RowAt(1))
}

// TestReadMatrixCSV_Gzip reads a gzipped file from disk.
func TestReadMatrixCSV_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auc.csv.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(matrixCSV))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	m, err := activity.ReadMatrixCSV(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.NRegulons())
	assert.Equal(t, 3, m.NCells())
}

// TestReadMatrixTSV reads a tab-separated table.
func TestReadMatrixTSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auc.tsv")
	tsv := strings.ReplaceAll(matrixCSV, ",", "\t")
	require.NoError(t, os.WriteFile(path, []byte(tsv), 0o644))

	m, err := activity.ReadMatrixTSV(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2", "c3"}, m.Cells())
}
