package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thruflo/labrun/internal/config"
)

// SetupProject creates a temporary project directory with the .labrun
// config from SampleConfigYAML, the pipeline files it names, and an
// empty output directory. The directory is cleaned up when the test
// completes.
func SetupProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	labDir := filepath.Join(dir, config.Dir)
	require.NoError(t, os.MkdirAll(labDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(labDir, "config.yaml"), []byte(SampleConfigYAML), 0o644))

	for _, rel := range []string{
		"scripts/columns.py",
		"scripts/inflation.py",
		"notebooks/01_dataframes.ipynb",
		"notebooks/02_series.ipynb",
	} {
		WriteProjectFile(t, dir, rel, "# placeholder\n")
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "outputs"), 0o755))

	return dir
}

// WriteProjectFile writes content to a file inside a test project,
// creating parent directories as needed. Returns the absolute path.
func WriteProjectFile(t *testing.T, basePath, relativePath, content string) string {
	t.Helper()

	fullPath := filepath.Join(basePath, relativePath)
	require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
	require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	return fullPath
}
