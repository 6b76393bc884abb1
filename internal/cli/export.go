package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/config"
	"github.com/thruflo/labrun/internal/manifest"
	"github.com/thruflo/labrun/internal/pytools"
)

// pipOverride replaces the pip adapter in tests.
var pipOverride manifest.PackageManager

// packageManager returns the package manager commands operate through.
func packageManager(cfg *config.Config, dir string) manifest.PackageManager {
	if pipOverride != nil {
		return pipOverride
	}
	return &pytools.Pip{Python: cfg.Python, Dir: dir}
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Snapshot installed packages to the manifest",
	Long: `Writes the packages installed in the active virtualenv to the manifest
file, one pinned specifier per line, replacing any previous snapshot.
Requires an active virtualenv.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, cfg.Manifest)
	count, err := manifest.Export(cmdContext(cmd), detectState(), packageManager(cfg, dir), path)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d package(s) to %s\n", count, cfg.Manifest)
	return nil
}
