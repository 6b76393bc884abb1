package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/state"
)

var notebooksTimeout time.Duration

var notebooksCmd = &cobra.Command{
	Use:   "notebooks",
	Short: "Execute the course notebooks in order",
	Long: `Sweeps the output directory, then executes the configured notebook
sequence in place, strictly in order. Each notebook is re-run and saved
with fresh outputs. The first failing notebook stops the run.`,
	RunE: runNotebooks,
}

func init() {
	notebooksCmd.Flags().DurationVar(&notebooksTimeout, "timeout", 0, "per-task time limit (overrides task_timeout)")
	rootCmd.AddCommand(notebooksCmd)
}

func runNotebooks(cmd *cobra.Command, args []string) error {
	return runPipeline(cmd, state.ModeNotebooks, notebooksTimeout)
}
