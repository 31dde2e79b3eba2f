// Package app holds the cobra command tree behind the scfunctions binary.
package app

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root command for scfunctions.
var RootCmd = &cobra.Command{
	Use:   "scfunctions",
	Short: "Downstream analysis of SCENIC regulon activity",
	Long: `scfunctions post-processes the regulon × cell AUC matrix produced by a
SCENIC run: it binarizes activity, scores per-cell-type regulon specificity
(RSS), and groups regulons into modules via the connection specificity
index (CSI).

Inputs are CSV/TSV tables (optionally gzipped):
  activity     AUC matrix; header row of cell ids, one row per regulon
  annotations  two-column cell,type table

Examples:
  # Full pipeline from a YAML config
  scfunctions run --config pipeline.yaml

  # Thresholds and binary calls only
  scfunctions binarize --activity auc_mtx.csv --out results

  # Ranked specificity scores
  scfunctions rss --activity auc_mtx.csv --annotations cell_types.csv --top 5`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree.
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(binarizeCmd)
	RootCmd.AddCommand(rssCmd)
}
