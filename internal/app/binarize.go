package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zktuong/scFunctions/activity"
	"github.com/zktuong/scFunctions/binarize"
)

var (
	binActivityPath string
	binOutDir       string
)

var binarizeCmd = &cobra.Command{
	Use:   "binarize",
	Short: "Derive per-regulon thresholds and binary activity calls",
	Long: `Derive one activity threshold per regulon by 1-D 2-means and write
thresholds.csv and binary_activity.csv into the output directory.

Near-constant regulons yield degenerate thresholds; review those
regulons manually before trusting their calls.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readActivityArg(binActivityPath)
		if err != nil {
			return err
		}
		thresholds, err := binarize.Thresholds(m)
		if err != nil {
			return err
		}
		bin, err := binarize.Binarize(m, thresholds)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(binOutDir, 0o755); err != nil {
			return err
		}
		if err := writeTable(filepath.Join(binOutDir, "thresholds.csv"), thresholds.WriteCSV); err != nil {
			return err
		}
		if err := writeTable(filepath.Join(binOutDir, "binary_activity.csv"), bin.WriteCSV); err != nil {
			return err
		}
		log.Printf("binarized %d regulons over %d cells into %s", bin.NRegulons(), bin.NCells(), binOutDir)
		return nil
	},
}

func readActivityArg(path string) (*activity.Matrix, error) {
	if path == "" {
		return nil, fmt.Errorf("--activity is required")
	}
	name := strings.TrimSuffix(path, ".gz")
	if strings.HasSuffix(name, ".tsv") || strings.HasSuffix(name, ".txt") {
		return activity.ReadMatrixTSV(path)
	}
	return activity.ReadMatrixCSV(path)
}

// writeTable funnels the WriteCSV methods through one create/close path.
func writeTable(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

func init() {
	binarizeCmd.Flags().StringVar(&binActivityPath, "activity", "", "activity matrix (CSV/TSV, .gz ok)")
	binarizeCmd.Flags().StringVar(&binOutDir, "out", ".", "output directory")
}
