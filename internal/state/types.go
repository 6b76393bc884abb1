// Package state persists labrun's run-history ledger: one record per
// pipeline invocation, kept under the project's .labrun directory. The
// ledger is informational; recording failures never fails a run.
package state

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run modes recorded in the ledger.
const (
	ModeScripts   = "scripts"
	ModeNotebooks = "notebooks"
	ModePDFs      = "pdfs"
)

// TaskResult is the per-task slice of a run record.
type TaskResult struct {
	Name     string `json:"name"`
	Status   string `json:"status"`
	ExitCode int    `json:"exit_code,omitempty"`
}

// Run records one pipeline invocation.
type Run struct {
	ID        string        `json:"id"`
	Mode      string        `json:"mode"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration_ns"`
	Results   []TaskResult  `json:"results,omitempty"`
	// Failed names the task that stopped the run, empty on success.
	Failed string `json:"failed,omitempty"`
}

// Succeeded reports whether the run completed without a failure.
func (r Run) Succeeded() bool {
	return r.Failed == ""
}

// NewRunID builds a unique run identifier that sorts chronologically.
func NewRunID(now time.Time) string {
	return fmt.Sprintf("run-%s-%s", now.UTC().Format("20060102-150405"), uuid.New().String()[:8])
}
