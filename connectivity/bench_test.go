package connectivity_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/zktuong/scFunctions/activity"
	"github.com/zktuong/scFunctions/connectivity"
)

// benchActivity builds a deterministic wave-pattern matrix: regulons fall
// into phase groups, so correlation and CSI stay well-conditioned.
func benchActivity(b *testing.B, regulons, cells int) *activity.Matrix {
	b.Helper()
	regs := make([]string, regulons)
	for i := range regs {
		regs[i] = fmt.Sprintf("R%03d", i)
	}
	cls := make([]string, cells)
	for j := range cls {
		cls[j] = fmt.Sprintf("c%04d", j)
	}
	data := make([]float64, regulons*cells)
	for i := 0; i < regulons; i++ {
		phase := float64(i%4) * math.Pi / 2
		for j := 0; j < cells; j++ {
			data[i*cells+j] = 2 + math.Sin(phase+float64(j)) + 0.01*float64(i)
		}
	}
	m, err := activity.NewMatrix(regs, cls, data)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkCorrelation_100x500(b *testing.B) {
	m := benchActivity(b, 100, 500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := connectivity.Correlation(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCSI_100(b *testing.B) {
	m := benchActivity(b, 100, 200)
	corr, err := connectivity.Correlation(m)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := connectivity.CSI(corr); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCluster_100(b *testing.B) {
	m := benchActivity(b, 100, 200)
	corr, err := connectivity.Correlation(m)
	if err != nil {
		b.Fatal(err)
	}
	sim, err := connectivity.CSI(corr)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := connectivity.Cluster(sim, 4); err != nil {
			b.Fatal(err)
		}
	}
}
