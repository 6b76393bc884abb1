package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/config"
	"github.com/thruflo/labrun/internal/workspace"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the virtualenv storage directory",
	Long: `Deletes the environment directory so it can be rebuilt from scratch.
Refuses to run while a virtualenv is active; deactivate first.

Recreate the environment afterwards with your Python's venv module,
activate it, then restore packages with 'labrun install'.`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}

	if err := workspace.RemoveEnv(detectState(), filepath.Join(dir, cfg.EnvDir)); err != nil {
		return err
	}

	fmt.Printf("Removed %s/\n", cfg.EnvDir)
	return nil
}
