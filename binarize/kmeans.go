package binarize

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// twoMeans partitions values into two clusters by 1-D k-means (k=2) and
// returns the final centroids (lo ≤ hi).
//
// Algorithm Outline:
//  1. Initialize centroids at the observed minimum and maximum.
//  2. Assign each value to its nearer centroid; ties go to the upper
//     cluster so the boundary value counts as active downstream.
//  3. Recompute centroids as cluster means; an emptied cluster keeps its
//     previous centroid.
//  4. Repeat until neither centroid moves more than tol, or maxIter.
//
// In one dimension the assignment step reduces to comparing against the
// centroid midpoint, so each pass is a single sweep. A constant slice
// returns two equal centroids — the degenerate case the caller documents.
func twoMeans(values []float64, maxIter int, tol float64) (lo, hi float64) {
	lo = floats.Min(values)
	hi = floats.Max(values)
	if lo == hi {
		return lo, hi
	}

	for iter := 0; iter < maxIter; iter++ {
		mid := (lo + hi) / 2

		var (
			sumLo, sumHi float64
			nLo, nHi     int
		)
		for _, v := range values {
			if v < mid {
				sumLo += v
				nLo++
			} else {
				sumHi += v
				nHi++
			}
		}

		nextLo, nextHi := lo, hi
		if nLo > 0 {
			nextLo = sumLo / float64(nLo)
		}
		if nHi > 0 {
			nextHi = sumHi / float64(nHi)
		}

		moved := math.Max(math.Abs(nextLo-lo), math.Abs(nextHi-hi))
		lo, hi = nextLo, nextHi
		if moved <= tol {
			break
		}
	}
	return lo, hi
}
