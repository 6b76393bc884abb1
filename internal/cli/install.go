package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/config"
	"github.com/thruflo/labrun/internal/manifest"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the packages listed in the manifest",
	Long: `Installs every package pinned in the manifest into the active
virtualenv, one specifier at a time in file order, stopping at the
first failure. Requires an active virtualenv and an existing manifest;
run 'labrun export' to create one.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, cfg.Manifest)
	count, err := manifest.Install(cmdContext(cmd), detectState(), packageManager(cfg, dir), path)
	if err != nil {
		return err
	}

	fmt.Printf("Installed %d package(s) from %s\n", count, cfg.Manifest)
	return nil
}
