package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/state"
)

var pdfsTimeout time.Duration

var pdfsCmd = &cobra.Command{
	Use:   "pdfs",
	Short: "Render the course notebooks to PDF",
	Long: `Sweeps the output directory, then renders each configured notebook to
a PDF in the output directory, strictly in order. Source notebooks are
not modified. The first failing conversion stops the run.`,
	RunE: runPDFs,
}

func init() {
	pdfsCmd.Flags().DurationVar(&pdfsTimeout, "timeout", 0, "per-task time limit (overrides task_timeout)")
	rootCmd.AddCommand(pdfsCmd)
}

func runPDFs(cmd *cobra.Command, args []string) error {
	return runPipeline(cmd, state.ModePDFs, pdfsTimeout)
}
