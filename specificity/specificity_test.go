package specificity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zktuong/scFunctions/activity"
	"github.com/zktuong/scFunctions/binarize"
	"github.com/zktuong/scFunctions/specificity"
)

// fixture builds the canonical scenario: 6 cells split into two types of 3,
// with regulon Sox2 active exactly in the typeA cells, Pax6 active exactly
// in the typeB cells, and Olig2 active in a mix.
func fixture(t *testing.T) (*binarize.BinaryMatrix, *activity.Annotations) {
	t.Helper()
	m, err := activity.NewMatrix(
		[]string{"Sox2", "Pax6", "Olig2"},
		[]string{"a1", "a2", "a3", "b1", "b2", "b3"},
		[]float64{
			0.9, 0.85, 0.95, 0.05, 0.1, 0.02,
			0.03, 0.08, 0.05, 0.9, 0.88, 0.92,
			0.8, 0.1, 0.85, 0.9, 0.05, 0.02,
		},
	)
	require.NoError(t, err)

	thr, err := binarize.Thresholds(m)
	require.NoError(t, err)
	bin, err := binarize.Binarize(m, thr)
	require.NoError(t, err)

	ann, err := activity.NewAnnotations(
		[]string{"a1", "a2", "a3", "b1", "b2", "b3"},
		[]string{"typeA", "typeA", "typeA", "typeB", "typeB", "typeB"},
	)
	require.NoError(t, err)
	return bin, ann
}

// TestScore_PerfectMatch requires RSS exactly 1.0 when a regulon's active
// set equals the cell type, and ~0.0 when they are disjoint.
func TestScore_PerfectMatch(t *testing.T) {
	bin, ann := fixture(t)

	s, err := specificity.Score(bin, ann, "Sox2", "typeA")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s, "active set == typeA must score exactly 1")

	s, err = specificity.Score(bin, ann, "Sox2", "typeB")
	require.NoError(t, err)
	assert.InDelta(t, 0.0, s, 1e-9, "disjoint sets must score 0")

	s, err = specificity.Score(bin, ann, "Pax6", "typeB")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s)
}

// TestScoreAll_Range checks every pair lands in [0,1] and the table covers
// the full regulon × type grid.
func TestScoreAll_Range(t *testing.T) {
	bin, ann := fixture(t)

	table, err := specificity.ScoreAll(bin, ann)
	require.NoError(t, err)
	assert.Equal(t, 3*2, table.Len())

	for _, e := range table.Entries() {
		assert.GreaterOrEqual(t, e.Score, 0.0, "%s/%s", e.Regulon, e.CellType)
		assert.LessOrEqual(t, e.Score, 1.0, "%s/%s", e.Regulon, e.CellType)
	}

	// Partial overlap scores strictly between the extremes.
	s, ok := table.Lookup("Olig2", "typeA")
	require.True(t, ok)
	assert.Greater(t, s, 0.0)
	assert.Less(t, s, 1.0)
}

// TestScore_Unknowns covers unknown regulon and cell type lookups.
func TestScore_Unknowns(t *testing.T) {
	bin, ann := fixture(t)

	_, err := specificity.Score(bin, ann, "ghost", "typeA")
	assert.ErrorIs(t, err, specificity.ErrUnknownRegulon)

	_, err = specificity.Score(bin, ann, "Sox2", "ghost")
	assert.ErrorIs(t, err, specificity.ErrUnknownCellType)
}

// TestScore_NilAndMismatch covers nil inputs and misaligned cells.
func TestScore_NilAndMismatch(t *testing.T) {
	bin, ann := fixture(t)

	_, err := specificity.Score(nil, ann, "Sox2", "typeA")
	assert.ErrorIs(t, err, specificity.ErrNilInput)

	_, err = specificity.ScoreAll(bin, nil)
	assert.ErrorIs(t, err, specificity.ErrNilInput)

	other, err := activity.NewAnnotations(
		[]string{"x1", "x2", "x3", "x4", "x5", "x6"},
		[]string{"T", "T", "T", "B", "B", "B"},
	)
	require.NoError(t, err)
	_, err = specificity.ScoreAll(bin, other)
	assert.ErrorIs(t, err, specificity.ErrCellMismatch)
}

// TestSimilarity_Bounds pins the scalar conversion at its edges.
func TestSimilarity_Bounds(t *testing.T) {
	assert.Equal(t, 1.0, specificity.Similarity(0))
	assert.Equal(t, 0.0, specificity.Similarity(1))
	assert.Equal(t, 0.5, specificity.Similarity(0.25), "1 - sqrt(0.25)")
	assert.Equal(t, 0.0, specificity.Similarity(1.0000000001), "clamped below zero")
}

// TestTopPerType checks ranking order and truncation.
func TestTopPerType(t *testing.T) {
	bin, ann := fixture(t)
	table, err := specificity.ScoreAll(bin, ann)
	require.NoError(t, err)

	top := table.TopPerType(1)
	require.Len(t, top["typeA"], 1)
	assert.Equal(t, "Sox2", top["typeA"][0].Regulon)
	require.Len(t, top["typeB"], 1)
	assert.Equal(t, "Pax6", top["typeB"][0].Regulon)

	all := table.TopPerType(0)
	assert.Len(t, all["typeA"], 3, "n ≤ 0 returns every regulon ranked")
	for i := 1; i < len(all["typeA"]); i++ {
		assert.GreaterOrEqual(t, all["typeA"][i-1].Score, all["typeA"][i].Score)
	}
}
