// SPDX-License-Identifier: MIT

package activity

import "fmt"

// Annotations maps each cell to a categorical cell-type label. Type order is
// the order of first appearance in the input, so downstream tables keep a
// stable, input-driven ordering.
type Annotations struct {
	cells  []string            // cell ids in input order
	types  []string            // type labels in order of first appearance
	byCell map[string]string   // cell id → type
	byType map[string][]string // type → member cells in input order
}

// NewAnnotations pairs cells[i] with types[i].
// Returns ErrMalformedTable on length mismatch or empty input, and
// ErrDuplicateLabel on a repeated cell identifier.
func NewAnnotations(cells, types []string) (*Annotations, error) {
	if len(cells) == 0 || len(cells) != len(types) {
		return nil, fmt.Errorf("%d cells vs %d types: %w", len(cells), len(types), ErrMalformedTable)
	}

	a := &Annotations{
		cells:  append([]string(nil), cells...),
		byCell: make(map[string]string, len(cells)),
		byType: make(map[string][]string),
	}
	for i, cell := range cells {
		if _, seen := a.byCell[cell]; seen {
			return nil, fmt.Errorf("cell %q: %w", cell, ErrDuplicateLabel)
		}
		t := types[i]
		a.byCell[cell] = t
		if _, seen := a.byType[t]; !seen {
			a.types = append(a.types, t)
		}
		a.byType[t] = append(a.byType[t], cell)
	}
	return a, nil
}

// Len returns the number of annotated cells.
func (a *Annotations) Len() int { return len(a.cells) }

// Cells returns a copy of the annotated cell identifiers in input order.
func (a *Annotations) Cells() []string { return append([]string(nil), a.cells...) }

// Types returns a copy of the cell-type labels in order of first appearance.
func (a *Annotations) Types() []string { return append([]string(nil), a.types...) }

// TypeOf reports the cell-type label of a cell and whether it is annotated.
func (a *Annotations) TypeOf(cell string) (string, bool) {
	t, ok := a.byCell[cell]
	return t, ok
}

// CellsOfType returns a copy of the cells carrying the given label, in input
// order. The slice is empty for an unknown label.
func (a *Annotations) CellsOfType(label string) []string {
	return append([]string(nil), a.byType[label]...)
}

// AlignTo reorders the annotations to the given cell order, typically the
// column order of an activity Matrix. Alignment is strict in both
// directions: every listed cell must be annotated and every annotated cell
// must be listed, otherwise ErrCellMismatch reports the first offender.
// Positional alignment is never attempted.
func (a *Annotations) AlignTo(cells []string) (*Annotations, error) {
	if len(cells) != len(a.cells) {
		return nil, fmt.Errorf("matrix has %d cells, annotations cover %d: %w",
			len(cells), len(a.cells), ErrCellMismatch)
	}
	types := make([]string, len(cells))
	for i, cell := range cells {
		t, ok := a.byCell[cell]
		if !ok {
			return nil, fmt.Errorf("matrix cell %q has no annotation: %w", cell, ErrCellMismatch)
		}
		types[i] = t
	}
	// Equal length plus full coverage implies the cell sets are identical.
	return NewAnnotations(cells, types)
}
