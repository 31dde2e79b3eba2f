// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Similarity is a symmetric regulon × regulon connection specificity index
// matrix with entries in [0, 1]. The diagonal is fixed at 1; self-pairs
// never enter the concordance counts.
type Similarity struct {
	regulons []string
	index    map[string]int
	sym      *mat.SymDense
}

// Regulons returns a copy of the regulon identifiers in matrix order.
func (s *Similarity) Regulons() []string { return append([]string(nil), s.regulons...) }

// N returns the number of regulons.
func (s *Similarity) N() int { return len(s.regulons) }

// At returns the similarity of regulons i and j.
func (s *Similarity) At(i, j int) float64 { return s.sym.At(i, j) }

// Between returns the similarity of two regulons addressed by identifier.
func (s *Similarity) Between(a, b string) (float64, error) {
	i, ok := s.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownRegulon)
	}
	j, ok := s.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownRegulon)
	}
	return s.sym.At(i, j), nil
}

// row returns CSI row i as a dense slice (used by the clustering step).
func (s *Similarity) row(i int) []float64 {
	out := make([]float64, s.N())
	for j := range out {
		out[j] = s.sym.At(i, j)
	}
	return out
}

// CSI converts a correlation matrix into the connection specificity index.
//
// For each unordered pair (A, B) with threshold thr = corr(A, B):
//
//	CSI(A, B) = |{ C ≠ A, B : corr(A, C) < thr ∧ corr(B, C) < thr }| / (n − 2)
//
// A and B are similar when most third parties correlate with both of them
// more weakly than they correlate with each other — concordant
// neighborhoods rather than raw correlation.
//
// Requires at least three regulons so the pool of third parties is
// non-empty (ErrTooFewRegulons). Symmetric by construction; CSI ∈ [0, 1].
// Complexity: O(n³) time, O(n²) memory.
func CSI(c *CorrMatrix) (*Similarity, error) {
	if c == nil {
		return nil, ErrNilInput
	}
	n := c.N()
	if n < 3 {
		return nil, fmt.Errorf("have %d, need at least 3: %w", n, ErrTooFewRegulons)
	}

	sym := mat.NewSymDense(n, nil)
	total := float64(n - 2)
	for i := 0; i < n; i++ {
		sym.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			thr := c.At(i, j)
			concordant := 0
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if c.At(i, k) < thr && c.At(j, k) < thr {
					concordant++
				}
			}
			sym.SetSym(i, j, float64(concordant)/total)
		}
	}

	index := make(map[string]int, n)
	regulons := c.Regulons()
	for i, r := range regulons {
		index[r] = i
	}
	return &Similarity{regulons: regulons, index: index, sym: sym}, nil
}
