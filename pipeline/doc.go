// Package pipeline wires the three analysis stages — binarization,
// specificity scoring, connectivity scoring — into one batch run.
//
// A run is a pure function: inputs are read in full, every table is
// recomputed from scratch, and nothing persists between runs except the
// files the caller asks for. Configuration comes from a small YAML file:
//
//	activity: auc_mtx.csv
//	annotations: cell_types.csv
//	output_dir: results
//	modules: 4
//	binarize:
//	  max_iterations: 100
//	  tolerance: 1e-6
//
// Run loads the inputs, executes RunMatrices and writes one CSV per output
// table into output_dir. RunMatrices is the in-memory entry point for
// callers who already hold the matrices.
package pipeline
