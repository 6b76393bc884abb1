package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings such as
// "90s" or "5m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config represents the .labrun/config.yaml file. Paths are relative to
// the project root.
type Config struct {
	// OutputDir is where rendered PDFs and generated CSVs land.
	OutputDir string `yaml:"output_dir"`
	// EnvDir is the virtualenv storage directory removed by reset.
	EnvDir string `yaml:"env_dir"`
	// Manifest is the dependency snapshot file written by export and
	// read by install.
	Manifest string `yaml:"manifest"`
	// Python is the interpreter binary used for scripts and pip.
	Python string `yaml:"python"`
	// Jupyter is the binary used to execute and render notebooks.
	Jupyter string `yaml:"jupyter"`
	// TaskTimeout bounds each task invocation. Zero means unbounded.
	TaskTimeout Duration `yaml:"task_timeout"`
	// Scripts is the ordered script sequence for the scripts command.
	Scripts []string `yaml:"scripts"`
	// Notebooks is the ordered notebook sequence for the notebooks and
	// pdfs commands.
	Notebooks []string `yaml:"notebooks"`
}
