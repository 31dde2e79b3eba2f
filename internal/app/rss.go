package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zktuong/scFunctions/activity"
	"github.com/zktuong/scFunctions/binarize"
	"github.com/zktuong/scFunctions/specificity"
)

var (
	rssActivityPath    string
	rssAnnotationsPath string
	rssOutDir          string
	rssTop             int
)

var rssCmd = &cobra.Command{
	Use:   "rss",
	Short: "Score regulon specificity per cell type",
	Long: `Binarize activity, score every (regulon, cell type) pair by the
Jensen-Shannon based regulon specificity score (RSS), print the top
regulons per cell type and write the full table to rss.csv.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := readActivityArg(rssActivityPath)
		if err != nil {
			return err
		}
		if rssAnnotationsPath == "" {
			return fmt.Errorf("--annotations is required")
		}
		ann, err := activity.ReadAnnotationsCSV(rssAnnotationsPath)
		if err != nil {
			return err
		}
		ann, err = ann.AlignTo(m.Cells())
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
		table, err := specificity.ScoreAll(bin, ann)
		if err != nil {
			return err
		}

		printTop(table.TopPerType(rssTop))

		if err := os.MkdirAll(rssOutDir, 0o755); err != nil {
			return err
		}
		return writeTable(filepath.Join(rssOutDir, "rss.csv"), table.WriteCSV)
	},
}

func printTop(byType map[string][]specificity.Entry) {
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("%s:\n", t)
		for _, e := range byType[t] {
			fmt.Printf("  %-24s %.4f\n", e.Regulon, e.Score)
		}
	}
}

func init() {
	rssCmd.Flags().StringVar(&rssActivityPath, "activity", "", "activity matrix (CSV/TSV, .gz ok)")
	rssCmd.Flags().StringVar(&rssAnnotationsPath, "annotations", "", "cell,type annotation table")
	rssCmd.Flags().StringVar(&rssOutDir, "out", ".", "output directory")
	rssCmd.Flags().IntVar(&rssTop, "top", 5, "regulons to print per cell type")
}
