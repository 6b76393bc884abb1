package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/state"
)

var scriptsTimeout time.Duration

var scriptsCmd = &cobra.Command{
	Use:   "scripts",
	Short: "Run the data-generation scripts in order",
	Long: `Sweeps the output directory, then runs the configured script sequence
with the project's Python interpreter, strictly in order. The first
failing script stops the run; later scripts are not started.`,
	RunE: runScripts,
}

func init() {
	scriptsCmd.Flags().DurationVar(&scriptsTimeout, "timeout", 0, "per-task time limit (overrides task_timeout)")
	rootCmd.AddCommand(scriptsCmd)
}

func runScripts(cmd *cobra.Command, args []string) error {
	return runPipeline(cmd, state.ModeScripts, scriptsTimeout)
}
