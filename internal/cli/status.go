package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/config"
	"github.com/thruflo/labrun/internal/runner"
	"github.com/thruflo/labrun/internal/state"
)

// maxStatusRuns caps how many runs the status table shows.
const maxStatusRuns = 10

// RunReader abstracts history ledger reads for testability.
type RunReader interface {
	LoadRuns() ([]state.Run, error)
}

// statusStore is the history reader used by the status command.
// It can be overridden in tests.
var statusStore RunReader

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pipeline configuration and recent runs",
	Long: `Shows the project's pipeline configuration and the most recent runs
from the history ledger, newest first.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}

	store := statusStore
	if store == nil {
		store = state.NewStore(dir)
	}

	printPipeline(cfg)

	runs, err := store.LoadRuns()
	if err != nil {
		return fmt.Errorf("failed to load run history: %w", err)
	}

	return listRuns(runs)
}

func printPipeline(cfg *config.Config) {
	fmt.Println("Pipeline")
	fmt.Println("--------")
	printField("Output dir", cfg.OutputDir)
	printField("Env dir", cfg.EnvDir)
	printField("Manifest", cfg.Manifest)
	printField("Scripts", fmt.Sprintf("%d task(s)", len(cfg.Scripts)))
	printField("Notebooks", fmt.Sprintf("%d task(s)", len(cfg.Notebooks)))

	timeout := "none"
	if cfg.TaskTimeout > 0 {
		timeout = cfg.TaskTimeout.String()
	}
	printField("Task timeout", timeout)
	fmt.Println()
}

func listRuns(runs []state.Run) error {
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	if len(runs) > maxStatusRuns {
		runs = runs[len(runs)-maxStatusRuns:]
	}

	type row struct {
		id, mode, tasks, duration, result string
	}

	// Newest first
	rows := make([]row, 0, len(runs))
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		result := "ok"
		if !r.Succeeded() {
			result = "failed: " + r.Failed
		}
		rows = append(rows, row{
			id:       r.ID,
			mode:     r.Mode,
			tasks:    fmt.Sprintf("%d/%d", countSucceeded(r.Results), len(r.Results)),
			duration: formatDuration(r.Duration),
			result:   result,
		})
	}

	// Calculate column widths
	idWidth := len("RUN")
	modeWidth := len("MODE")
	tasksWidth := len("TASKS")
	durationWidth := len("DURATION")
	for _, r := range rows {
		if len(r.id) > idWidth {
			idWidth = len(r.id)
		}
		if len(r.mode) > modeWidth {
			modeWidth = len(r.mode)
		}
		if len(r.tasks) > tasksWidth {
			tasksWidth = len(r.tasks)
		}
		if len(r.duration) > durationWidth {
			durationWidth = len(r.duration)
		}
	}

	fmt.Printf("%-*s  %-*s  %-*s  %-*s  %s\n",
		idWidth, "RUN", modeWidth, "MODE", tasksWidth, "TASKS", durationWidth, "DURATION", "RESULT")
	fmt.Printf("%s  %s  %s  %s  %s\n",
		strings.Repeat("-", idWidth), strings.Repeat("-", modeWidth),
		strings.Repeat("-", tasksWidth), strings.Repeat("-", durationWidth), "------")

	for _, r := range rows {
		fmt.Printf("%-*s  %-*s  %-*s  %-*s  %s\n",
			idWidth, r.id, modeWidth, r.mode, tasksWidth, r.tasks, durationWidth, r.duration, r.result)
	}

	return nil
}

func countSucceeded(results []state.TaskResult) int {
	n := 0
	for _, r := range results {
		if r.Status == runner.StatusSucceeded {
			n++
		}
	}
	return n
}

func printField(label, value string) {
	fmt.Printf("  %-14s %s\n", label+":", value)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)

	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
