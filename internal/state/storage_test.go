package state

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/labrun/internal/config"
)

func TestStore_LoadRuns_Empty(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	runs, err := store.LoadRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStore_AppendAndLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	started := time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)

	run := Run{
		ID:        NewRunID(started),
		Mode:      ModeScripts,
		StartedAt: started,
		Duration:  42 * time.Second,
		Results: []TaskResult{
			{Name: "scripts/columns.py", Status: "succeeded"},
			{Name: "scripts/inflation.py", Status: "failed", ExitCode: 1},
		},
		Failed: "scripts/inflation.py",
	}
	require.NoError(t, store.AppendRun(run))

	runs, err := store.LoadRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run, runs[0])
	assert.False(t, runs[0].Succeeded())
}

func TestStore_AppendKeepsOrder(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	for i := 0; i < 3; i++ {
		require.NoError(t, store.AppendRun(Run{ID: fmt.Sprintf("run-%d", i), Mode: ModeNotebooks}))
	}

	runs, err := store.LoadRuns()
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, "run-0", runs[0].ID)
	assert.Equal(t, "run-2", runs[2].ID)
}

func TestStore_AppendTrimsOldRuns(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	for i := 0; i < historyKeep+5; i++ {
		require.NoError(t, store.AppendRun(Run{ID: fmt.Sprintf("run-%d", i), Mode: ModeScripts}))
	}

	runs, err := store.LoadRuns()
	require.NoError(t, err)
	require.Len(t, runs, historyKeep)

	// The oldest entries are gone, the newest survives
	assert.Equal(t, "run-5", runs[0].ID)
	assert.Equal(t, fmt.Sprintf("run-%d", historyKeep+4), runs[len(runs)-1].ID)
}

func TestStore_LastRun(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	last, err := store.LastRun()
	require.NoError(t, err)
	assert.Nil(t, last)

	require.NoError(t, store.AppendRun(Run{ID: "run-a", Mode: ModeScripts}))
	require.NoError(t, store.AppendRun(Run{ID: "run-b", Mode: ModePDFs}))

	last, err = store.LastRun()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "run-b", last.ID)
	assert.True(t, last.Succeeded())
}

func TestStore_LoadRuns_CorruptFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	labDir := filepath.Join(dir, config.Dir)
	require.NoError(t, os.MkdirAll(labDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(labDir, "history.json"), []byte("{not json"), 0o644))

	store := NewStore(dir)
	_, err := store.LoadRuns()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse history file")
}

func TestNewRunID_Format(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 14, 5, 9, 0, time.UTC)
	id := NewRunID(now)

	assert.Regexp(t, regexp.MustCompile(`^run-20260825-140509-[0-9a-f]{8}$`), id)
}

func TestNewRunID_Unique(t *testing.T) {
	t.Parallel()

	now := time.Now()
	assert.NotEqual(t, NewRunID(now), NewRunID(now))
}
