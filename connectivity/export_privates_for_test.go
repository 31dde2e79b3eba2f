// SPDX-License-Identifier: MIT
// Test-only exports. Compiled into the package under `go test` only, so
// external _test files can build fixtures without widening the public API.

package connectivity

import "gonum.org/v1/gonum/mat"

// NewSimilarityForTest builds a Similarity from row-major values. Values
// must describe a symmetric n×n matrix; only the upper triangle is read.
func NewSimilarityForTest(regulons []string, values []float64) *Similarity {
	n := len(regulons)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, values[i*n+j])
		}
	}
	index := make(map[string]int, n)
	for i, r := range regulons {
		index[r] = i
	}
	return &Similarity{regulons: append([]string(nil), regulons...), index: index, sym: sym}
}
