// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/zktuong/scFunctions/activity"
)

// ModuleSummary is a module × cell-type matrix of mean raw activity: entry
// (k, t) is the average continuous activity of module k's regulons over the
// cells of type t.
type ModuleSummary struct {
	types     []string
	typeIndex map[string]int
	mean      *mat.Dense // modules × types
}

// NModules returns the number of modules summarized.
func (ms *ModuleSummary) NModules() int { r, _ := ms.mean.Dims(); return r }

// Types returns a copy of the cell-type labels in annotation order.
func (ms *ModuleSummary) Types() []string { return append([]string(nil), ms.types...) }

// Mean returns the mean activity of module id (1-based) in the given cell
// type. Returns ErrUnknownModule or ErrUnknownCellType-like mismatch via
// ErrCellMismatch for an unknown label.
func (ms *ModuleSummary) Mean(id int, cellType string) (float64, error) {
	r, _ := ms.mean.Dims()
	if id < 1 || id > r {
		return 0, fmt.Errorf("module %d of %d: %w", id, r, ErrUnknownModule)
	}
	t, ok := ms.typeIndex[cellType]
	if !ok {
		return 0, fmt.Errorf("cell type %q: %w", cellType, ErrCellMismatch)
	}
	return ms.mean.At(id-1, t), nil
}

// Summarize averages raw continuous activity over each module's regulons,
// grouped by cell type — the module × cell-type table behind the usual
// module-activity heatmap.
//
// All three inputs must describe the same population: the assignment's
// regulons must equal the matrix rows (ErrRegulonMismatch) and every matrix
// cell must be annotated (ErrCellMismatch).
func Summarize(m *activity.Matrix, modules *ModuleAssignment, ann *activity.Annotations) (*ModuleSummary, error) {
	if m == nil || modules == nil || ann == nil {
		return nil, ErrNilInput
	}
	if err := sameRegulons(m, modules); err != nil {
		return nil, err
	}
	if m.NCells() != ann.Len() {
		return nil, fmt.Errorf("matrix has %d cells, annotations cover %d: %w",
			m.NCells(), ann.Len(), ErrCellMismatch)
	}

	// Columns of each cell type, in matrix order.
	types := ann.Types()
	typeIndex := make(map[string]int, len(types))
	for t, label := range types {
		typeIndex[label] = t
	}
	colsOfType := make([][]int, len(types))
	for j, cell := range m.Cells() {
		label, ok := ann.TypeOf(cell)
		if !ok {
			return nil, fmt.Errorf("cell %q has no annotation: %w", cell, ErrCellMismatch)
		}
		t := typeIndex[label]
		colsOfType[t] = append(colsOfType[t], j)
	}

	k := modules.Count()
	mean := mat.NewDense(k, len(types), nil)
	for id := 1; id <= k; id++ {
		members, err := modules.Members(id)
		if err != nil {
			return nil, err
		}
		for t := range types {
			values := make([]float64, 0, len(members)*len(colsOfType[t]))
			for _, regulon := range members {
				i, err := m.RegulonIndex(regulon)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", err, ErrRegulonMismatch)
				}
				for _, j := range colsOfType[t] {
					values = append(values, m.At(i, j))
				}
			}
			mean.Set(id-1, t, stat.Mean(values, nil))
		}
	}
	return &ModuleSummary{types: types, typeIndex: typeIndex, mean: mean}, nil
}

// sameRegulons checks that the assignment covers exactly the matrix rows.
func sameRegulons(m *activity.Matrix, modules *ModuleAssignment) error {
	a, b := m.Regulons(), modules.Regulons()
	if len(a) != len(b) {
		return fmt.Errorf("matrix has %d regulons, assignment covers %d: %w",
			len(a), len(b), ErrRegulonMismatch)
	}
	for i := range a {
		if a[i] != b[i] {
			return fmt.Errorf("row %d: %q vs %q: %w", i, a[i], b[i], ErrRegulonMismatch)
		}
	}
	return nil
}
