// SPDX-License-Identifier: MIT

package specificity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/zktuong/scFunctions/activity"
	"github.com/zktuong/scFunctions/binarize"
)

// Similarity converts a normalized Jensen–Shannon divergence d ∈ [0,1] into
// a specificity score: 1 − sqrt(d). The result is clamped into [0,1] so
// floating-point residue at the extremes cannot leak out of range.
//
// This conversion is the contract shared with the original R tooling; keep
// it a pure scalar function.
func Similarity(divergence float64) float64 {
	s := 1 - math.Sqrt(divergence)
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// normalizedJSD returns the Jensen–Shannon divergence of p and q rescaled
// from gonum's natural-log range [0, ln 2] into [0, 1].
func normalizedJSD(p, q []float64) float64 {
	d := stat.JensenShannon(p, q) / math.Ln2
	switch {
	case d < 0:
		return 0
	case d > 1:
		return 1
	}
	return d
}

// Score computes the specificity of one (regulon, cellType) pair. The
// binary matrix and annotations must cover the same cells.
// Returns ErrNilInput, ErrUnknownRegulon, ErrUnknownCellType or
// ErrCellMismatch.
func Score(b *binarize.BinaryMatrix, ann *activity.Annotations, regulon, cellType string) (float64, error) {
	if b == nil || ann == nil {
		return 0, ErrNilInput
	}
	member, err := membership(b, ann)
	if err != nil {
		return 0, err
	}
	row, err := b.Row(regulon)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", regulon, ErrUnknownRegulon)
	}
	q, ok := member[cellType]
	if !ok {
		return 0, fmt.Errorf("%q: %w", cellType, ErrUnknownCellType)
	}
	return Similarity(normalizedJSD(activityDistribution(row), q)), nil
}

// ScoreAll computes the specificity of every (regulon, cell type) pair.
// Pairs are independent; the table is ordered regulon-major with cell types
// in annotation order.
func ScoreAll(b *binarize.BinaryMatrix, ann *activity.Annotations) (*Table, error) {
	if b == nil || ann == nil {
		return nil, ErrNilInput
	}
	member, err := membership(b, ann)
	if err != nil {
		return nil, err
	}

	types := ann.Types()
	entries := make([]Entry, 0, b.NRegulons()*len(types))
	for _, regulon := range b.Regulons() {
		row, err := b.Row(regulon)
		if err != nil {
			return nil, err
		}
		p := activityDistribution(row)
		for _, t := range types {
			entries = append(entries, Entry{
				Regulon:  regulon,
				CellType: t,
				Score:    Similarity(normalizedJSD(p, member[t])),
			})
		}
	}
	return &Table{entries: entries}, nil
}

// activityDistribution normalizes a binary activity row into a probability
// vector. A regulon active nowhere degrades to the uniform distribution.
func activityDistribution(row []bool) []float64 {
	p := make([]float64, len(row))
	n := 0
	for _, on := range row {
		if on {
			n++
		}
	}
	if n == 0 {
		u := 1 / float64(len(row))
		for j := range p {
			p[j] = u
		}
		return p
	}
	w := 1 / float64(n)
	for j, on := range row {
		if on {
			p[j] = w
		}
	}
	return p
}

// membership builds one normalized cell-type indicator per type, in the
// binary matrix's cell order. Strict alignment: every matrix cell must be
// annotated and cell counts must agree (ErrCellMismatch).
func membership(b *binarize.BinaryMatrix, ann *activity.Annotations) (map[string][]float64, error) {
	cells := b.Cells()
	if len(cells) != ann.Len() {
		return nil, fmt.Errorf("matrix has %d cells, annotations cover %d: %w",
			len(cells), ann.Len(), ErrCellMismatch)
	}

	counts := make(map[string]int)
	typeOf := make([]string, len(cells))
	for j, cell := range cells {
		t, ok := ann.TypeOf(cell)
		if !ok {
			return nil, fmt.Errorf("cell %q has no annotation: %w", cell, ErrCellMismatch)
		}
		typeOf[j] = t
		counts[t]++
	}

	member := make(map[string][]float64, len(counts))
	for t, n := range counts {
		q := make([]float64, len(cells))
		w := 1 / float64(n)
		for j := range cells {
			if typeOf[j] == t {
				q[j] = w
			}
		}
		member[t] = q
	}
	return member, nil
}
