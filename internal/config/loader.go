package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dir is the per-project directory holding labrun's config and history.
const Dir = ".labrun"

// Default values for Config.
const (
	DefaultOutputDir = "outputs"
	DefaultEnvDir    = ".venv"
	DefaultManifest  = "requirements.txt"
	DefaultPython    = "python3"
	DefaultJupyter   = "jupyter"
)

// DefaultConfig returns a Config with sensible default values. Task
// sequences default to empty; they are project data written by init.
func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		EnvDir:    DefaultEnvDir,
		Manifest:  DefaultManifest,
		Python:    DefaultPython,
		Jupyter:   DefaultJupyter,
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// LoadConfig reads and parses .labrun/config.yaml from the given base
// path. If the file doesn't exist, returns default config. Applies
// defaults for any missing fields.
func LoadConfig(basePath string) (*Config, error) {
	configPath := filepath.Join(basePath, Dir, "config.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if err := validateSubdir("output_dir", cfg.OutputDir); err != nil {
		return err
	}
	if err := validateSubdir("env_dir", cfg.EnvDir); err != nil {
		return err
	}
	if cfg.Manifest == "" {
		return ValidationError{Field: "manifest", Message: "required field is empty"}
	}
	if cfg.Python == "" {
		return ValidationError{Field: "python", Message: "required field is empty"}
	}
	if cfg.Jupyter == "" {
		return ValidationError{Field: "jupyter", Message: "required field is empty"}
	}
	if cfg.TaskTimeout < 0 {
		return ValidationError{Field: "task_timeout", Message: "must not be negative"}
	}
	if err := validateSequence("scripts", cfg.Scripts); err != nil {
		return err
	}
	if err := validateSequence("notebooks", cfg.Notebooks); err != nil {
		return err
	}
	return nil
}

// validateSubdir rejects directory values that would escape the project
// root. Both the cleaner and the environment reset delete inside these
// directories, so "." or an absolute path would be destructive.
func validateSubdir(field, value string) error {
	if value == "" {
		return ValidationError{Field: field, Message: "required field is empty"}
	}
	if filepath.IsAbs(value) {
		return ValidationError{Field: field, Message: "must be relative to the project root"}
	}
	clean := filepath.Clean(value)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return ValidationError{Field: field, Message: "must name a directory inside the project"}
	}
	return nil
}

// validateSequence rejects empty and duplicate task entries. Order is
// significant, and failures are reported by task name, so each name
// must appear at most once.
func validateSequence(field string, names []string) error {
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		entry := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(name) == "" {
			return ValidationError{Field: entry, Message: "task name is empty"}
		}
		if seen[name] {
			return ValidationError{Field: entry, Message: fmt.Sprintf("duplicate task %q", name)}
		}
		seen[name] = true
	}
	return nil
}
