// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/zktuong/scFunctions/activity"
)

// CorrMatrix is a symmetric regulon × regulon Pearson correlation matrix.
type CorrMatrix struct {
	regulons []string
	index    map[string]int
	sym      *mat.SymDense
}

// Regulons returns a copy of the regulon identifiers in matrix order.
func (c *CorrMatrix) Regulons() []string { return append([]string(nil), c.regulons...) }

// N returns the number of regulons.
func (c *CorrMatrix) N() int { return len(c.regulons) }

// At returns the correlation between regulons i and j.
func (c *CorrMatrix) At(i, j int) float64 { return c.sym.At(i, j) }

// Between returns the correlation of two regulons addressed by identifier.
func (c *CorrMatrix) Between(a, b string) (float64, error) {
	i, ok := c.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownRegulon)
	}
	j, ok := c.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownRegulon)
	}
	return c.sym.At(i, j), nil
}

// Correlation computes the Pearson correlation of every regulon pair's
// continuous activity across all cells.
// Stage 1 (Validate): matrix non-nil, ≥ 2 cells, no constant rows (Pearson
// is undefined there, and gonum would emit NaN columns — rejected up front
// with the offending regulon named).
// Stage 2 (Execute): orient the data cells × regulons and delegate to
// gonum's stat.CorrelationMatrix.
// Returns ErrNilInput, ErrTooFewCells or ErrConstantRow.
func Correlation(m *activity.Matrix) (*CorrMatrix, error) {
	if m == nil {
		return nil, ErrNilInput
	}
	nReg, nCell := m.NRegulons(), m.NCells()
	if nCell < 2 {
		return nil, ErrTooFewCells
	}

	regulons := m.Regulons()
	for i, regulon := range regulons {
		if constantRow(m, i) {
			return nil, fmt.Errorf("regulon %q: %w", regulon, ErrConstantRow)
		}
	}

	// stat.CorrelationMatrix treats rows as observations and columns as
	// variables, so feed it the transposed activity matrix.
	obs := mat.NewDense(nCell, nReg, nil)
	obs.Copy(m.Raw().T())

	sym := mat.NewSymDense(nReg, nil)
	stat.CorrelationMatrix(sym, obs, nil)

	index := make(map[string]int, nReg)
	for i, r := range regulons {
		index[r] = i
	}
	return &CorrMatrix{regulons: regulons, index: index, sym: sym}, nil
}

func constantRow(m *activity.Matrix, i int) bool {
	first := m.At(i, 0)
	for j := 1; j < m.NCells(); j++ {
		if m.At(i, j) != first {
			return false
		}
	}
	return true
}
