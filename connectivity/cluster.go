// SPDX-License-Identifier: MIT

package connectivity

import (
	"fmt"
	"math"
)

// ModuleAssignment maps every regulon to a 1-based module id. Ids are
// ordered by each module's first regulon in matrix order, so the same input
// always yields the same labeling.
type ModuleAssignment struct {
	regulons []string
	id       map[string]int
	members  [][]string // members[k] = regulons of module k+1, in matrix order
}

// Regulons returns a copy of the assigned regulon identifiers in matrix
// order.
func (ma *ModuleAssignment) Regulons() []string { return append([]string(nil), ma.regulons...) }

// Count returns the number of modules.
func (ma *ModuleAssignment) Count() int { return len(ma.members) }

// Module returns the module id of a regulon, or ErrUnknownRegulon.
func (ma *ModuleAssignment) Module(regulon string) (int, error) {
	id, ok := ma.id[regulon]
	if !ok {
		return 0, fmt.Errorf("%q: %w", regulon, ErrUnknownRegulon)
	}
	return id, nil
}

// Members returns a copy of the regulons in module id (1-based), or
// ErrUnknownModule.
func (ma *ModuleAssignment) Members(id int) ([]string, error) {
	if id < 1 || id > len(ma.members) {
		return nil, fmt.Errorf("module %d of %d: %w", id, len(ma.members), ErrUnknownModule)
	}
	return append([]string(nil), ma.members[id-1]...), nil
}

// Cluster groups regulons into k modules by agglomerative hierarchical
// clustering of the CSI matrix.
//
// Algorithm Outline:
//  1. Distance: Euclidean distance between CSI rows — regulons with
//     similar connectivity profiles sit close together.
//  2. Agglomerate: start from singletons; repeatedly merge the closest
//     pair of clusters, updating distances by average linkage
//     (Lance–Williams: d(a∪b, o) = (|a|·d(a,o) + |b|·d(b,o)) / (|a|+|b|)).
//  3. Cut: stop when k clusters remain; number them 1..k by their first
//     regulon in matrix order.
//
// Ties in the merge step resolve to the lowest index pair, so the result
// is deterministic. Returns ErrNilInput or ErrBadClusterCount (k < 1 or
// k > regulon count). Complexity: O(n³) time, O(n²) memory.
func Cluster(s *Similarity, k int) (*ModuleAssignment, error) {
	if s == nil {
		return nil, ErrNilInput
	}
	n := s.N()
	if k < 1 || k > n {
		return nil, fmt.Errorf("k=%d with %d regulons: %w", k, n, ErrBadClusterCount)
	}

	// Pairwise Euclidean distances between CSI rows.
	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = s.row(i)
	}
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := euclidean(rows[i], rows[j])
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	active := make([]bool, n)
	size := make([]int, n)
	cluster := make([][]int, n) // member regulon indices, kept sorted
	for i := 0; i < n; i++ {
		active[i] = true
		size[i] = 1
		cluster[i] = []int{i}
	}

	for remaining := n; remaining > k; remaining-- {
		// Closest active pair; lowest (a, b) wins ties.
		a, b, best := -1, -1, math.Inf(1)
		for i := 0; i < n; i++ {
			if !active[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !active[j] {
					continue
				}
				if dist[i][j] < best {
					a, b, best = i, j, dist[i][j]
				}
			}
		}

		// Merge b into a; average-linkage distance update.
		na, nb := float64(size[a]), float64(size[b])
		for o := 0; o < n; o++ {
			if !active[o] || o == a || o == b {
				continue
			}
			d := (na*dist[a][o] + nb*dist[b][o]) / (na + nb)
			dist[a][o] = d
			dist[o][a] = d
		}
		cluster[a] = mergeSorted(cluster[a], cluster[b])
		size[a] += size[b]
		active[b] = false
		cluster[b] = nil
	}

	// Collect surviving clusters in first-member order; since merges keep
	// the lower slot, iterating slots 0..n-1 already yields that order.
	regulons := s.Regulons()
	ma := &ModuleAssignment{
		regulons: regulons,
		id:       make(map[string]int, n),
	}
	for i := 0; i < n; i++ {
		if !active[i] {
			continue
		}
		members := make([]string, len(cluster[i]))
		for m, idx := range cluster[i] {
			members[m] = regulons[idx]
		}
		ma.members = append(ma.members, members)
		id := len(ma.members)
		for _, r := range members {
			ma.id[r] = id
		}
	}
	return ma, nil
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// mergeSorted merges two ascending index slices into one.
func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if a[i] < b[j] {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}
