package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thruflo/labrun/internal/config"
)

// historyKeep caps how many runs the ledger retains. Older entries are
// dropped on append.
const historyKeep = 50

// Store handles run-history storage operations.
type Store struct {
	basePath string
}

// NewStore creates a new Store. The base path should be the project
// root; the ledger lives at .labrun/history.json.
func NewStore(basePath string) *Store {
	return &Store{basePath: basePath}
}

func (s *Store) historyPath() string {
	return filepath.Join(s.basePath, config.Dir, "history.json")
}

// LoadRuns reads the ledger, oldest first. A missing ledger is empty.
func (s *Store) LoadRuns() ([]Run, error) {
	data, err := os.ReadFile(s.historyPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	var runs []Run
	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return runs, nil
}

// SaveRuns writes the ledger, creating the .labrun directory if needed.
func (s *Store) SaveRuns(runs []Run) error {
	if err := os.MkdirAll(filepath.Dir(s.historyPath()), 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := os.WriteFile(s.historyPath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// AppendRun adds a run to the ledger, dropping the oldest entries past
// the retention cap.
func (s *Store) AppendRun(run Run) error {
	runs, err := s.LoadRuns()
	if err != nil {
		return err
	}

	runs = append(runs, run)
	if len(runs) > historyKeep {
		runs = runs[len(runs)-historyKeep:]
	}
	return s.SaveRuns(runs)
}

// LastRun returns the most recent run, or nil when none are recorded.
func (s *Store) LastRun() (*Run, error) {
	runs, err := s.LoadRuns()
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[len(runs)-1], nil
}
