// SPDX-License-Identifier: MIT

package activity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a regulon × cell activity matrix: rows are regulons, columns are
// cells, entries are continuous AUC scores. A Matrix is immutable by
// convention: no method mutates it after construction, and accessors return
// copies of label slices.
type Matrix struct {
	regulons []string
	cells    []string
	rowIndex map[string]int // regulon id → row
	colIndex map[string]int // cell id → column
	data     *mat.Dense     // len(regulons) × len(cells)
}

// NewMatrix builds a Matrix from row-major data.
// Stage 1 (Validate): non-empty dimensions, matching data length, unique
// labels, finite values.
// Stage 2 (Index): build label → position maps.
// Stage 3 (Finalize): copy labels and data so the caller's slices stay free.
// Returns ErrEmptyMatrix, ErrBadShape, ErrDuplicateLabel or ErrNaNInf.
func NewMatrix(regulons, cells []string, data []float64) (*Matrix, error) {
	r, c := len(regulons), len(cells)
	if r == 0 || c == 0 {
		return nil, ErrEmptyMatrix
	}
	if len(data) != r*c {
		return nil, fmt.Errorf("got %d values for %d×%d matrix: %w", len(data), r, c, ErrBadShape)
	}

	rowIndex, err := indexLabels(regulons)
	if err != nil {
		return nil, err
	}
	colIndex, err := indexLabels(cells)
	if err != nil {
		return nil, err
	}

	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("value at offset %d: %w", i, ErrNaNInf)
		}
	}

	buf := make([]float64, len(data))
	copy(buf, data)

	return &Matrix{
		regulons: append([]string(nil), regulons...),
		cells:    append([]string(nil), cells...),
		rowIndex: rowIndex,
		colIndex: colIndex,
		data:     mat.NewDense(r, c, buf),
	}, nil
}

// indexLabels maps each label to its position, rejecting duplicates.
func indexLabels(labels []string) (map[string]int, error) {
	idx := make(map[string]int, len(labels))
	for i, l := range labels {
		if _, seen := idx[l]; seen {
			return nil, fmt.Errorf("%q: %w", l, ErrDuplicateLabel)
		}
		idx[l] = i
	}
	return idx, nil
}

// NRegulons returns the number of regulons (rows).
func (m *Matrix) NRegulons() int { return len(m.regulons) }

// NCells returns the number of cells (columns).
func (m *Matrix) NCells() int { return len(m.cells) }

// Regulons returns a copy of the regulon identifiers in row order.
func (m *Matrix) Regulons() []string { return append([]string(nil), m.regulons...) }

// Cells returns a copy of the cell identifiers in column order.
func (m *Matrix) Cells() []string { return append([]string(nil), m.cells...) }

// RegulonIndex returns the row of the given regulon, or ErrUnknownRegulon.
func (m *Matrix) RegulonIndex(regulon string) (int, error) {
	i, ok := m.rowIndex[regulon]
	if !ok {
		return 0, fmt.Errorf("%q: %w", regulon, ErrUnknownRegulon)
	}
	return i, nil
}

// CellIndex returns the column of the given cell, or ErrUnknownCell.
func (m *Matrix) CellIndex(cell string) (int, error) {
	j, ok := m.colIndex[cell]
	if !ok {
		return 0, fmt.Errorf("%q: %w", cell, ErrUnknownCell)
	}
	return j, nil
}

// At returns the score at row i, column j. Indices are bounds-checked by the
// underlying gonum matrix and panic on misuse (programmer error, not input).
func (m *Matrix) At(i, j int) float64 { return m.data.At(i, j) }

// Score returns the score for a (regulon, cell) pair addressed by identifier.
func (m *Matrix) Score(regulon, cell string) (float64, error) {
	i, err := m.RegulonIndex(regulon)
	if err != nil {
		return 0, err
	}
	j, err := m.CellIndex(cell)
	if err != nil {
		return 0, err
	}
	return m.data.At(i, j), nil
}

// Row returns a copy of the activity scores for one regulon, in cell order.
func (m *Matrix) Row(regulon string) ([]float64, error) {
	i, err := m.RegulonIndex(regulon)
	if err != nil {
		return nil, err
	}
	return m.RowAt(i), nil
}

// RowAt returns a copy of row i in cell order.
func (m *Matrix) RowAt(i int) []float64 {
	out := make([]float64, len(m.cells))
	mat.Row(out, i, m.data)
	return out
}

// Raw exposes the underlying storage as a read-only gonum matrix view for
// numeric routines (correlation, aggregation). Callers must not type-assert
// and mutate it.
func (m *Matrix) Raw() mat.Matrix { return m.data }
