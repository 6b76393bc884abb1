package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/labrun/internal/manifest"
	"github.com/thruflo/labrun/internal/venv"
)

// stubPackageManager implements manifest.PackageManager for CLI tests.
type stubPackageManager struct {
	specs     []string
	listErr   error
	installed []string
	failOn    string
}

func (s *stubPackageManager) ListInstalled(ctx context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.specs, nil
}

func (s *stubPackageManager) Install(ctx context.Context, specifier string) error {
	if specifier == s.failOn {
		return fmt.Errorf("exit status 1")
	}
	s.installed = append(s.installed, specifier)
	return nil
}

var _ manifest.PackageManager = (*stubPackageManager)(nil)

func TestExportCommand(t *testing.T) {
	dir := setupProject(t)

	pipOverride = &stubPackageManager{specs: []string{"numpy==1.26.4", "pandas==2.2.2"}}
	envState = &venv.State{Active: true, Path: filepath.Join(dir, ".venv")}
	defer func() {
		pipOverride = nil
		envState = nil
	}()

	output := captureOutput(func() {
		err := runExport(exportCmd, []string{})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Exported 2 package(s) to requirements.txt")

	content, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "numpy==1.26.4\npandas==2.2.2\n", string(content))
}

func TestExportCommand_OverwritesPreviousSnapshot(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte("stale==0.1\n"), 0o644))

	pipOverride = &stubPackageManager{specs: []string{"numpy==1.26.4"}}
	envState = &venv.State{Active: true, Path: filepath.Join(dir, ".venv")}
	defer func() {
		pipOverride = nil
		envState = nil
	}()

	captureOutput(func() {
		require.NoError(t, runExport(exportCmd, []string{}))
	})

	content, err := os.ReadFile(filepath.Join(dir, "requirements.txt"))
	require.NoError(t, err)
	assert.Equal(t, "numpy==1.26.4\n", string(content))
}

func TestExportCommand_NoActiveEnv(t *testing.T) {
	dir := setupProject(t)

	pipOverride = &stubPackageManager{specs: []string{"numpy==1.26.4"}}
	envState = &venv.State{Active: false}
	defer func() {
		pipOverride = nil
		envState = nil
	}()

	err := runExport(exportCmd, []string{})
	require.Error(t, err)
	assert.True(t, venv.IsStateError(err))
	assert.NoFileExists(t, filepath.Join(dir, "requirements.txt"))
}
