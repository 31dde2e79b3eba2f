// SPDX-License-Identifier: MIT

package activity

import (
	"bufio"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Expected matrix layout (SCENIC AUC export):
//
//	<corner>,Cell_1,Cell_2,...
//	Regulon_A,0.013,0.242,...
//	Regulon_B,0.001,0.117,...
//
// The corner label is ignored. Annotation tables are two columns, cell id
// then cell-type label, with an optional header line.

// ReadMatrixCSV reads a comma-separated activity matrix. Files ending in
// ".gz" are decompressed on the fly.
func ReadMatrixCSV(path string) (*Matrix, error) {
	return readMatrixFile(path, ',')
}

// ReadMatrixTSV reads a tab-separated activity matrix. Files ending in
// ".gz" are decompressed on the fly.
func ReadMatrixTSV(path string) (*Matrix, error) {
	return readMatrixFile(path, '\t')
}

func readMatrixFile(path string, sep rune) (*Matrix, error) {
	rc, err := openMaybeGzip(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	m, err := ReadMatrix(rc, sep)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ReadMatrix parses an activity matrix from r using the given field
// separator. The first record is the cell-id header; every following record
// is one regulon row.
func ReadMatrix(r io.Reader, sep rune) (*Matrix, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = sep
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty input: %w", ErrMalformedTable)
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("header has %d fields, need a label column and at least one cell: %w",
			len(header), ErrMalformedTable)
	}
	cells := append([]string(nil), header[1:]...)

	var (
		regulons []string
		data     []float64
	)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) != len(cells)+1 {
			return nil, fmt.Errorf("line %d has %d fields, want %d: %w",
				line, len(rec), len(cells)+1, ErrMalformedTable)
		}
		regulons = append(regulons, rec[0])
		for _, field := range rec[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, field, ErrMalformedTable)
			}
			data = append(data, v)
		}
	}
	return NewMatrix(regulons, cells, data)
}

// ReadAnnotationsCSV reads a two-column cell,type table. A first line whose
// second field is "cell_type", "celltype" or "type" (case-insensitive) is
// treated as a header and skipped. Files ending in ".gz" are decompressed on
// the fly.
func ReadAnnotationsCSV(path string) (*Annotations, error) {
	rc, err := openMaybeGzip(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	a, err := ReadAnnotations(rc, ',')
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// ReadAnnotations parses a two-column cell,type table from r.
func ReadAnnotations(r io.Reader, sep rune) (*Annotations, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.Comma = sep
	cr.ReuseRecord = true

	var cells, types []string
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) != 2 {
			return nil, fmt.Errorf("line %d has %d fields, want 2: %w", line, len(rec), ErrMalformedTable)
		}
		if line == 1 && isAnnotationHeader(rec[1]) {
			continue
		}
		cells = append(cells, rec[0])
		types = append(types, rec[1])
	}
	return NewAnnotations(cells, types)
}

func isAnnotationHeader(field string) bool {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "cell_type", "celltype", "type":
		return true
	}
	return false
}

// WriteMatrixCSV writes m in the same layout ReadMatrixCSV expects, with
// "regulon" as the corner label.
func WriteMatrixCSV(path string, m *Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteMatrix(f, m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// WriteMatrix writes m as CSV to w.
func WriteMatrix(w io.Writer, m *Matrix) error {
	cw := csv.NewWriter(w)

	header := append([]string{"regulon"}, m.Cells()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	row := make([]string, m.NCells()+1)
	for i, regulon := range m.Regulons() {
		row[0] = regulon
		for j := 0; j < m.NCells(); j++ {
			row[j+1] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// openMaybeGzip opens path, transparently decompressing ".gz" files.
func openMaybeGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &gzipFile{zr: zr, f: f}, nil
}

// gzipFile closes both the gzip stream and the underlying file.
type gzipFile struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipFile) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}
