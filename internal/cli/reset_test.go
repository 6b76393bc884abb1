package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/labrun/internal/venv"
)

func TestResetCommand(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".venv", "bin"), 0o755))

	envState = &venv.State{Active: false}
	defer func() { envState = nil }()

	output := captureOutput(func() {
		err := runReset(resetCmd, []string{})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Removed .venv/")
	assert.NoDirExists(t, filepath.Join(dir, ".venv"))
}

func TestResetCommand_RefusedWhileActive(t *testing.T) {
	dir := setupProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".venv"), 0o755))

	envState = &venv.State{Active: true, Path: filepath.Join(dir, ".venv")}
	defer func() { envState = nil }()

	err := runReset(resetCmd, []string{})
	require.Error(t, err)
	assert.True(t, venv.IsStateError(err))

	// The environment is left alone
	assert.DirExists(t, filepath.Join(dir, ".venv"))
}

func TestResetCommand_MissingEnvDir(t *testing.T) {
	setupProject(t)

	envState = &venv.State{Active: false}
	defer func() { envState = nil }()

	output := captureOutput(func() {
		err := runReset(resetCmd, []string{})
		require.NoError(t, err)
	})

	assert.Contains(t, output, "Removed .venv/")
}
