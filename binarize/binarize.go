package binarize

import (
	"fmt"

	"github.com/zktuong/scFunctions/activity"
)

// ThresholdMap holds one activity cut point per regulon, derived once from
// that regulon's score distribution.
type ThresholdMap struct {
	regulons []string
	cut      map[string]float64
}

// Regulons returns a copy of the covered regulon identifiers in matrix row
// order.
func (t *ThresholdMap) Regulons() []string { return append([]string(nil), t.regulons...) }

// Value returns the threshold for a regulon, or ErrUnknownRegulon.
func (t *ThresholdMap) Value(regulon string) (float64, error) {
	v, ok := t.cut[regulon]
	if !ok {
		return 0, fmt.Errorf("%q: %w", regulon, ErrUnknownRegulon)
	}
	return v, nil
}

// BinaryMatrix is the boolean counterpart of an activity matrix: true means
// the cell's score reached the regulon's threshold.
type BinaryMatrix struct {
	regulons []string
	cells    []string
	rowIndex map[string]int
	active   [][]bool // regulon-major
}

// Regulons returns a copy of the regulon identifiers in row order.
func (b *BinaryMatrix) Regulons() []string { return append([]string(nil), b.regulons...) }

// Cells returns a copy of the cell identifiers in column order.
func (b *BinaryMatrix) Cells() []string { return append([]string(nil), b.cells...) }

// NRegulons returns the number of regulons.
func (b *BinaryMatrix) NRegulons() int { return len(b.regulons) }

// NCells returns the number of cells.
func (b *BinaryMatrix) NCells() int { return len(b.cells) }

// Row returns a copy of the activity calls for one regulon, in cell order.
func (b *BinaryMatrix) Row(regulon string) ([]bool, error) {
	i, ok := b.rowIndex[regulon]
	if !ok {
		return nil, fmt.Errorf("%q: %w", regulon, ErrUnknownRegulon)
	}
	return append([]bool(nil), b.active[i]...), nil
}

// ActiveCells returns the cells in which the regulon is called active, in
// cell order.
func (b *BinaryMatrix) ActiveCells(regulon string) ([]string, error) {
	i, ok := b.rowIndex[regulon]
	if !ok {
		return nil, fmt.Errorf("%q: %w", regulon, ErrUnknownRegulon)
	}
	var cells []string
	for j, on := range b.active[i] {
		if on {
			cells = append(cells, b.cells[j])
		}
	}
	return cells, nil
}

// NActive returns how many cells the regulon is active in.
func (b *BinaryMatrix) NActive(regulon string) (int, error) {
	i, ok := b.rowIndex[regulon]
	if !ok {
		return 0, fmt.Errorf("%q: %w", regulon, ErrUnknownRegulon)
	}
	n := 0
	for _, on := range b.active[i] {
		if on {
			n++
		}
	}
	return n, nil
}

// Thresholds derives one cut point per regulon from m.
// Stage 1 (Validate): matrix non-nil, options sane.
// Stage 2 (Execute): per row, split scores by 1-D 2-means and take the
// midpoint between the two centroids.
// Stage 3 (Finalize): package results into a ThresholdMap.
//
// Every threshold lies within [row min, row max]. A near-constant row
// produces a degenerate threshold (at the row's single value for an exactly
// constant row) without error; such regulons should be reviewed manually.
func Thresholds(m *activity.Matrix, opts ...Option) (*ThresholdMap, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	o := gatherOptions(opts)
	if o.err != nil {
		return nil, o.err
	}

	regulons := m.Regulons()
	cut := make(map[string]float64, len(regulons))
	for i, regulon := range regulons {
		lo, hi := twoMeans(m.RowAt(i), o.maxIterations, o.tolerance)
		cut[regulon] = (lo + hi) / 2
	}
	return &ThresholdMap{regulons: regulons, cut: cut}, nil
}

// Binarize applies t to m: score ≥ threshold → active. The threshold map
// must cover every regulon of the matrix (ErrRegulonMismatch otherwise);
// extra thresholds are ignored.
func Binarize(m *activity.Matrix, t *ThresholdMap) (*BinaryMatrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if t == nil {
		return nil, ErrNilThresholds
	}

	regulons := m.Regulons()
	b := &BinaryMatrix{
		regulons: regulons,
		cells:    m.Cells(),
		rowIndex: make(map[string]int, len(regulons)),
		active:   make([][]bool, len(regulons)),
	}
	for i, regulon := range regulons {
		thr, ok := t.cut[regulon]
		if !ok {
			return nil, fmt.Errorf("regulon %q: %w", regulon, ErrRegulonMismatch)
		}
		b.rowIndex[regulon] = i
		row := make([]bool, m.NCells())
		for j := 0; j < m.NCells(); j++ {
			row[j] = m.At(i, j) >= thr
		}
		b.active[i] = row
	}
	return b, nil
}
