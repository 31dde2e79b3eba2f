package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zktuong/scFunctions/activity"
	"github.com/zktuong/scFunctions/binarize"
	"github.com/zktuong/scFunctions/connectivity"
	"github.com/zktuong/scFunctions/specificity"
)

// Result bundles every table a full run produces.
type Result struct {
	Thresholds  *binarize.ThresholdMap
	Binary      *binarize.BinaryMatrix
	Specificity *specificity.Table
	Similarity  *connectivity.Similarity
	Modules     *connectivity.ModuleAssignment
	Summary     *connectivity.ModuleSummary
}

// RunMatrices executes the three stages on in-memory inputs:
// binarization → specificity scoring → connectivity scoring. Stateless;
// every call recomputes everything from scratch.
func RunMatrices(m *activity.Matrix, ann *activity.Annotations, modules int, bc BinarizeConfig) (*Result, error) {
	if m == nil || ann == nil {
		return nil, ErrNilInput
	}
	if modules < 1 {
		return nil, ErrBadModules
	}
	ann, err := ann.AlignTo(m.Cells())
	if err != nil {
		return nil, err
	}

	var opts []binarize.Option
	if bc.MaxIterations > 0 {
		opts = append(opts, binarize.WithMaxIterations(bc.MaxIterations))
	}
	if bc.Tolerance > 0 {
		opts = append(opts, binarize.WithTolerance(bc.Tolerance))
	}

	thresholds, err := binarize.Thresholds(m, opts...)
	if err != nil {
		return nil, err
	}
	binary, err := binarize.Binarize(m, thresholds)
	if err != nil {
		return nil, err
	}

	rss, err := specificity.ScoreAll(binary, ann)
	if err != nil {
		return nil, err
	}

	corr, err := connectivity.Correlation(m)
	if err != nil {
		return nil, err
	}
	sim, err := connectivity.CSI(corr)
	if err != nil {
		return nil, err
	}
	assignment, err := connectivity.Cluster(sim, modules)
	if err != nil {
		return nil, err
	}
	summary, err := connectivity.Summarize(m, assignment, ann)
	if err != nil {
		return nil, err
	}

	return &Result{
		Thresholds:  thresholds,
		Binary:      binary,
		Specificity: rss,
		Similarity:  sim,
		Modules:     assignment,
		Summary:     summary,
	}, nil
}

// Run loads the configured inputs, executes the full pipeline and writes
// one CSV per output table into cfg.OutputDir:
//
//	thresholds.csv       regulon,threshold
//	binary_activity.csv  regulon × cell 0/1 matrix
//	rss.csv              regulon,cell_type,specificity
//	csi.csv              regulon × regulon similarity
//	modules.csv          regulon,module
//	module_activity.csv  module × cell-type mean activity
func Run(cfg *Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := readActivity(cfg.Activity)
	if err != nil {
		return nil, err
	}
	ann, err := activity.ReadAnnotationsCSV(cfg.Annotations)
	if err != nil {
		return nil, err
	}

	res, err := RunMatrices(m, ann, cfg.Modules, cfg.Binarize)
	if err != nil {
		return nil, err
	}
	if err := writeResult(cfg.OutputDir, m, res); err != nil {
		return nil, err
	}
	return res, nil
}

// readActivity picks the separator from the file suffix.
func readActivity(path string) (*activity.Matrix, error) {
	name := strings.TrimSuffix(path, ".gz")
	if strings.HasSuffix(name, ".tsv") || strings.HasSuffix(name, ".txt") {
		return activity.ReadMatrixTSV(path)
	}
	return activity.ReadMatrixCSV(path)
}

func writeResult(dir string, m *activity.Matrix, res *Result) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pipeline: create output dir: %w", err)
	}

	if err := createAndWrite(filepath.Join(dir, "thresholds.csv"), res.Thresholds.WriteCSV); err != nil {
		return err
	}
	if err := createAndWrite(filepath.Join(dir, "binary_activity.csv"), res.Binary.WriteCSV); err != nil {
		return err
	}
	if err := createAndWrite(filepath.Join(dir, "rss.csv"), res.Specificity.WriteCSV); err != nil {
		return err
	}
	if err := createAndWrite(filepath.Join(dir, "csi.csv"), res.Similarity.WriteCSV); err != nil {
		return err
	}
	if err := createAndWrite(filepath.Join(dir, "modules.csv"), res.Modules.WriteCSV); err != nil {
		return err
	}
	return createAndWrite(filepath.Join(dir, "module_activity.csv"), res.Summary.WriteCSV)
}

func createAndWrite(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("pipeline: %s: %w", path, err)
	}
	return f.Close()
}
