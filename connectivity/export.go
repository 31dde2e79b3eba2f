// SPDX-License-Identifier: MIT

package connectivity

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the CSI matrix as a labeled square table, mirroring the
// activity-matrix layout ("regulon" corner label, one header row of
// regulon ids).
func (s *Similarity) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"regulon"}, s.regulons...)); err != nil {
		return fmt.Errorf("connectivity: write header: %w", err)
	}
	row := make([]string, s.N()+1)
	for i, regulon := range s.regulons {
		row[0] = regulon
		for j := 0; j < s.N(); j++ {
			row[j+1] = strconv.FormatFloat(s.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("connectivity: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the assignment as regulon,module rows with a header.
func (ma *ModuleAssignment) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"regulon", "module"}); err != nil {
		return fmt.Errorf("connectivity: write header: %w", err)
	}
	for _, regulon := range ma.regulons {
		rec := []string{regulon, strconv.Itoa(ma.id[regulon])}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("connectivity: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the summary as a module × cell-type table with module ids
// in the first column.
func (ms *ModuleSummary) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{"module"}, ms.types...)); err != nil {
		return fmt.Errorf("connectivity: write header: %w", err)
	}
	rows, cols := ms.mean.Dims()
	row := make([]string, cols+1)
	for i := 0; i < rows; i++ {
		row[0] = strconv.Itoa(i + 1)
		for j := 0; j < cols; j++ {
			row[j+1] = strconv.FormatFloat(ms.mean.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("connectivity: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
