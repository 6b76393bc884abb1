package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/config"
	"github.com/thruflo/labrun/internal/workspace"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete generated artifacts from the output directory",
	Long: `Removes every generated artifact (PDF, CSV) from the configured output
directory. Other files are left alone, and a missing or already-empty
output directory is not an error.`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}

	removed, err := workspace.CleanOutputs(filepath.Join(dir, cfg.OutputDir))
	if err != nil {
		return err
	}

	fmt.Printf("Removed %d generated file(s) from %s/\n", removed, cfg.OutputDir)
	return nil
}
