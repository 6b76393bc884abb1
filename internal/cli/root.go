package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/logging"
	"github.com/thruflo/labrun/internal/venv"
)

// Version is set at build time via ldflags.
var Version = "dev"

var verbose bool

// envState overrides virtualenv detection in tests.
var envState *venv.State

var rootCmd = &cobra.Command{
	Use:   "labrun",
	Short: "Build pipeline runner for a notebook-based analysis course",
	Long: `Labrun drives the build pipeline of a notebook-based course repository.
It runs the data-generation scripts and course notebooks in their fixed
order with fail-fast semantics, renders notebooks to PDF, sweeps
generated artifacts, and snapshots or restores the pip environment.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("labrun version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// projectDir resolves the directory every command operates on.
func projectDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return cwd, nil
}

// detectState reads the virtualenv activation state once per command.
func detectState() venv.State {
	if envState != nil {
		return *envState
	}
	return venv.Detect()
}

// cmdContext returns the command's context. RunE handlers called
// directly in tests have no context set, so fall back to Background.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
