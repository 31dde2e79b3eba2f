package binarize

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the map as regulon,threshold rows with a header.
func (t *ThresholdMap) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"regulon", "threshold"}); err != nil {
		return fmt.Errorf("binarize: write header: %w", err)
	}
	for _, regulon := range t.regulons {
		rec := []string{regulon, strconv.FormatFloat(t.cut[regulon], 'g', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("binarize: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the matrix in the activity-matrix layout with 0/1 entries.
func (b *BinaryMatrix) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"regulon"}, b.cells...)); err != nil {
		return fmt.Errorf("binarize: write header: %w", err)
	}
	row := make([]string, len(b.cells)+1)
	for i, regulon := range b.regulons {
		row[0] = regulon
		for j, on := range b.active[i] {
			if on {
				row[j+1] = "1"
			} else {
				row[j+1] = "0"
			}
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("binarize: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
