package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultModules is the module count used when the config omits one.
const DefaultModules = 4

// BinarizeConfig tunes the threshold search. Zero values fall back to the
// binarize package defaults.
type BinarizeConfig struct {
	MaxIterations int     `yaml:"max_iterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// Config describes one pipeline run.
type Config struct {
	// Activity is the path of the regulon × cell AUC matrix (CSV/TSV,
	// optionally gzipped). Tab separation is inferred from a .tsv or
	// .tsv.gz suffix.
	Activity string `yaml:"activity"`

	// Annotations is the path of the two-column cell,type table.
	Annotations string `yaml:"annotations"`

	// OutputDir receives one CSV per output table. Empty means the
	// current directory.
	OutputDir string `yaml:"output_dir"`

	// Modules is the cluster count for the connectivity stage.
	Modules int `yaml:"modules"`

	Binarize BinarizeConfig `yaml:"binarize"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("pipeline: parse config %s: %w", path, err)
	}
	if cfg.Modules == 0 {
		cfg.Modules = DefaultModules
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for structural problems. Path existence is
// left to the readers so error messages carry the failing filename.
func (c *Config) Validate() error {
	if c.Activity == "" {
		return ErrNoActivity
	}
	if c.Annotations == "" {
		return ErrNoAnnotations
	}
	if c.Modules < 1 {
		return ErrBadModules
	}
	if c.Binarize.MaxIterations < 0 || c.Binarize.Tolerance < 0 {
		return ErrBadBinarize
	}
	return nil
}
