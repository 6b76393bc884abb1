package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/labrun/internal/venv"
)

func writeFile(t *testing.T, dir, rel string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestCleanOutputs_RemovesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pdf := writeFile(t, dir, "01_dataframes.pdf")
	csv := writeFile(t, dir, "prices.csv")
	upper := writeFile(t, dir, "REPORT.PDF")
	nested := writeFile(t, dir, "archive/old.csv")
	keep := writeFile(t, dir, "notes.txt")

	removed, err := CleanOutputs(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, removed)

	assert.NoFileExists(t, pdf)
	assert.NoFileExists(t, csv)
	assert.NoFileExists(t, upper)
	assert.NoFileExists(t, nested)
	assert.FileExists(t, keep)
}

func TestCleanOutputs_Idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "out.pdf")

	removed, err := CleanOutputs(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	// Second sweep has nothing to do and still succeeds
	removed, err = CleanOutputs(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestCleanOutputs_MissingDirectory(t *testing.T) {
	t.Parallel()

	removed, err := CleanOutputs(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestCleanOutputs_EmptyDirectory(t *testing.T) {
	t.Parallel()

	removed, err := CleanOutputs(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestCleanOutputs_KeepsSubdirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "figures/plot.pdf")

	removed, err := CleanOutputs(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.DirExists(t, filepath.Join(dir, "figures"))
}

func TestRemoveEnv_Inactive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envDir := filepath.Join(dir, ".venv")
	writeFile(t, envDir, "bin/activate")

	require.NoError(t, RemoveEnv(venv.State{}, envDir))
	assert.NoDirExists(t, envDir)
}

func TestRemoveEnv_MissingDirectory(t *testing.T) {
	t.Parallel()

	err := RemoveEnv(venv.State{}, filepath.Join(t.TempDir(), ".venv"))
	assert.NoError(t, err)
}

func TestRemoveEnv_RefusedWhileActive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	envDir := filepath.Join(dir, ".venv")
	writeFile(t, envDir, "bin/activate")

	err := RemoveEnv(venv.State{Active: true, Path: envDir}, envDir)
	require.Error(t, err)
	assert.True(t, venv.IsStateError(err))

	// Guard failure must leave the directory untouched
	assert.DirExists(t, envDir)
}
