package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zktuong/scFunctions/connectivity"
)

// csiFixture builds six regulons in two anti-correlated blocks over eight
// cells; within-block correlations sit near +0.9, cross-block near −0.9.
func csiFixture(t *testing.T) *connectivity.CorrMatrix {
	t.Helper()
	m := mustMatrix(t,
		[]string{"A1", "A2", "A3", "B1", "B2", "B3"},
		[]string{"c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8"},
		[]float64{
			5, 4, 5, 4, 1, 0, 1, 0,
			4, 5, 4, 5, 0, 1, 0, 1,
			5, 5, 4, 4, 1, 1, 0, 0,
			1, 0, 1, 0, 5, 4, 5, 4,
			0, 1, 0, 1, 4, 5, 4, 5,
			1, 1, 0, 0, 5, 5, 4, 4,
		},
	)
	corr, err := connectivity.Correlation(m)
	require.NoError(t, err)
	return corr
}

// TestCSI_HandComputed pins the three-regulon case against hand-worked
// values: with one third party, each pair's index is 0 or 1.
func TestCSI_HandComputed(t *testing.T) {
	m := mustMatrix(t,
		[]string{"A", "B", "C"},
		[]string{"c1", "c2", "c3", "c4"},
		[]float64{
			1, 2, 3, 4,
			1, 2, 3, 5, // tracks A closely
			4, 3, 2, 1, // anti-correlated with both
		},
	)
	corr, err := connectivity.Correlation(m)
	require.NoError(t, err)
	sim, err := connectivity.CSI(corr)
	require.NoError(t, err)

	// C correlates negatively with A and B, far below corr(A,B): the one
	// third party is concordant, so CSI(A,B)=1.
	ab, err := sim.Between("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, ab)

	// corr(A,C) is the lowest value around: no third party sits below it.
	ac, err := sim.Between("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, ac)

	bc, err := sim.Between("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 0.0, bc)
}

// TestCSI_SymmetricAndBounded verifies the structural guarantees on a
// larger fixture: symmetry, unit diagonal, values in [0,1].
func TestCSI_SymmetricAndBounded(t *testing.T) {
	sim, err := connectivity.CSI(csiFixture(t))
	require.NoError(t, err)

	n := sim.N()
	assert.Equal(t, 6, n)
	for i := 0; i < n; i++ {
		assert.Equal(t, 1.0, sim.At(i, i))
		for j := 0; j < n; j++ {
			assert.Equal(t, sim.At(i, j), sim.At(j, i), "CSI must be symmetric")
			assert.GreaterOrEqual(t, sim.At(i, j), 0.0)
			assert.LessOrEqual(t, sim.At(i, j), 1.0)
		}
	}
}

// TestCSI_MatchesBruteForce cross-checks the implementation against an
// independent straight-from-the-definition loop.
func TestCSI_MatchesBruteForce(t *testing.T) {
	corr := csiFixture(t)
	sim, err := connectivity.CSI(corr)
	require.NoError(t, err)

	n := corr.N()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			thr := corr.At(i, j)
			count := 0
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if corr.At(i, k) < thr && corr.At(j, k) < thr {
					count++
				}
			}
			want := float64(count) / float64(n-2)
			assert.Equal(t, want, sim.At(i, j), "pair (%d,%d)", i, j)
		}
	}
}

// TestCSI_SeparatesBlocks checks the discriminative property the module
// step relies on: within-block similarity exceeds cross-block similarity.
func TestCSI_SeparatesBlocks(t *testing.T) {
	sim, err := connectivity.CSI(csiFixture(t))
	require.NoError(t, err)

	within, _ := sim.Between("A1", "A2")
	cross, _ := sim.Between("A1", "B1")
	assert.Greater(t, within, cross)
}

// TestCSI_TooFew requires at least three regulons.
func TestCSI_TooFew(t *testing.T) {
	m := mustMatrix(t,
		[]string{"A", "B"},
		[]string{"c1", "c2", "c3"},
		[]float64{1, 2, 3, 3, 2, 1},
	)
	corr, err := connectivity.Correlation(m)
	require.NoError(t, err)

	_, err = connectivity.CSI(corr)
	assert.ErrorIs(t, err, connectivity.ErrTooFewRegulons)

	_, err = connectivity.CSI(nil)
	assert.ErrorIs(t, err, connectivity.ErrNilInput)
}
