// Package workspace resets a project to a pre-build state: it sweeps
// generated artifacts from the output directory and removes the
// virtualenv storage when a full environment rebuild is wanted.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/thruflo/labrun/internal/venv"
)

// artifactExts are the generated-artifact extensions CleanOutputs
// removes. Everything else in the output directory is left alone.
var artifactExts = map[string]bool{
	".pdf": true,
	".csv": true,
}

// CleanOutputs removes generated artifacts under dir and returns how
// many files were deleted. A missing directory or an empty sweep is a
// success; the operation is idempotent.
func CleanOutputs(dir string) (int, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read output directory: %w", err)
	}

	removed := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !artifactExts[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed++
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("failed to clean outputs: %w", err)
	}
	return removed, nil
}

// RemoveEnv deletes the virtualenv storage directory so the environment
// can be rebuilt from scratch. It refuses to run while an environment
// is active; deleting the storage behind a live activation leaves the
// shell pointing at nothing.
func RemoveEnv(st venv.State, dir string) error {
	if err := venv.RequireInactive(st); err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove environment directory: %w", err)
	}
	return nil
}
