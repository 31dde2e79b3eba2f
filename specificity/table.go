// SPDX-License-Identifier: MIT

package specificity

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Entry is one scored (regulon, cell type) pair.
type Entry struct {
	Regulon  string
	CellType string
	Score    float64
}

// Table holds the specificity score of every (regulon, cell type) pair,
// regulon-major with cell types in annotation order.
type Table struct {
	entries []Entry
}

// Len returns the number of scored pairs.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of all scored pairs.
func (t *Table) Entries() []Entry { return append([]Entry(nil), t.entries...) }

// Lookup returns the score of one pair, or false when absent.
func (t *Table) Lookup(regulon, cellType string) (float64, bool) {
	for _, e := range t.entries {
		if e.Regulon == regulon && e.CellType == cellType {
			return e.Score, true
		}
	}
	return 0, false
}

// TopPerType returns, for each cell type, its n highest-scoring regulons in
// descending score order (ties broken by regulon name for determinism).
// n ≤ 0 or n larger than the regulon count returns every regulon ranked.
// This is the ranking that feeds the usual RSS dot plots upstream.
func (t *Table) TopPerType(n int) map[string][]Entry {
	byType := make(map[string][]Entry)
	for _, e := range t.entries {
		byType[e.CellType] = append(byType[e.CellType], e)
	}
	for ct, entries := range byType {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Score != entries[j].Score {
				return entries[i].Score > entries[j].Score
			}
			return entries[i].Regulon < entries[j].Regulon
		})
		if n > 0 && n < len(entries) {
			byType[ct] = entries[:n]
		}
	}
	return byType
}

// WriteCSV writes the table as regulon,cell_type,score rows with a header.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"regulon", "cell_type", "specificity"}); err != nil {
		return fmt.Errorf("specificity: write header: %w", err)
	}
	for _, e := range t.entries {
		rec := []string{e.Regulon, e.CellType, strconv.FormatFloat(e.Score, 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("specificity: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
