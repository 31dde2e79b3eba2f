package binarize_test

import (
	"math"
	"testing"

	"github.com/zktuong/scFunctions/activity"
	"github.com/zktuong/scFunctions/binarize"
)

// benchMatrix builds a deterministic bimodal matrix of the given size.
func benchMatrix(b *testing.B, regulons, cells int) *activity.Matrix {
	b.Helper()
	regs := make([]string, regulons)
	for i := range regs {
		regs[i] = "R" + string(rune('A'+i%26)) + string(rune('0'+i/26%10)) + string(rune('0'+i/260))
	}
	cls := make([]string, cells)
	for j := range cls {
		cls[j] = "c" + string(rune('a'+j%26)) + string(rune('0'+j/26%10)) + string(rune('0'+j/260))
	}
	data := make([]float64, regulons*cells)
	for i := 0; i < regulons; i++ {
		for j := 0; j < cells; j++ {
			base := 0.1
			if (i+j)%2 == 0 {
				base = 0.9
			}
			data[i*cells+j] = base + 0.05*math.Sin(float64(i*cells+j))
		}
	}
	m, err := activity.NewMatrix(regs, cls, data)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkThresholds_100x1000(b *testing.B) {
	m := benchMatrix(b, 100, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := binarize.Thresholds(m); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBinarize_100x1000(b *testing.B) {
	m := benchMatrix(b, 100, 1000)
	thr, err := binarize.Thresholds(m)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := binarize.Binarize(m, thr); err != nil {
			b.Fatal(err)
		}
	}
}
