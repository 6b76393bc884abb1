package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize .labrun/ pipeline configuration",
	Long: `Creates the .labrun/ directory with a default pipeline configuration.

This command sets up:
  - config.yaml naming the script and notebook sequences in run order
  - .gitignore excluding the machine-local run history
  - the output directory generated artifacts land in

Edit .labrun/config.yaml to match your project's scripts and notebooks.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	labDir := filepath.Join(cwd, config.Dir)
	configPath := filepath.Join(labDir, "config.yaml")

	if fileExists(configPath) && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)",
			filepath.Join(config.Dir, "config.yaml"))
	}

	if err := os.MkdirAll(labDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", labDir, err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write config.yaml: %w", err)
	}

	if err := writeGitignore(labDir); err != nil {
		return err
	}

	outDir := filepath.Join(cwd, config.DefaultOutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	fmt.Printf("Initialized %s/ with the default pipeline\n", config.Dir)
	return nil
}

// fileExists checks if a regular file exists
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func writeGitignore(labDir string) error {
	content := `# Machine-local run history
history.json
`
	return os.WriteFile(filepath.Join(labDir, ".gitignore"), []byte(content), 0o644)
}

const defaultConfigYAML = `# Labrun pipeline configuration

# Directory generated artifacts (PDFs, CSVs) are written to.
# Swept before every run.
output_dir: outputs

# Virtualenv storage directory, removed by 'labrun reset'
env_dir: .venv

# Dependency snapshot written by 'labrun export' and read by
# 'labrun install'
manifest: requirements.txt

# Tool binaries, resolved through PATH
python: python3
jupyter: jupyter

# Per-task time limit as a duration string (e.g. 90s, 10m).
# 0 means no limit.
task_timeout: 0

# Data-generation scripts, run in this order by 'labrun scripts'
scripts:
  - scripts/columns.py
  - scripts/inflation.py
  - scripts/pricing.py
  - scripts/randomize.py

# Course notebooks, executed in this order by 'labrun notebooks' and
# rendered to PDF by 'labrun pdfs'
notebooks:
  - notebooks/01_dataframes.ipynb
  - notebooks/02_plotting.ipynb
  - notebooks/03_inflation.ipynb
  - notebooks/04_pricing.ipynb
  - notebooks/05_randomization.ipynb
  - notebooks/06_experiments.ipynb
`
