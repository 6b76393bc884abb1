package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/thruflo/labrun/internal/config"
	"github.com/thruflo/labrun/internal/logging"
	"github.com/thruflo/labrun/internal/pytools"
	"github.com/thruflo/labrun/internal/runner"
	"github.com/thruflo/labrun/internal/state"
	"github.com/thruflo/labrun/internal/workspace"
)

// RunRecorder abstracts history ledger writes for testability.
type RunRecorder interface {
	AppendRun(run state.Run) error
}

// Test overrides for the pipeline's collaborators.
var (
	pipelineExecutor runner.Executor
	pipelineRenderer runner.Renderer
	historyStore     RunRecorder
)

func executorFor(cfg *config.Config, dir string) runner.Executor {
	if pipelineExecutor != nil {
		return pipelineExecutor
	}
	return &pytools.Toolchain{
		Scripts:   &pytools.ScriptTool{Python: cfg.Python, Dir: dir},
		Notebooks: &pytools.NotebookTool{Jupyter: cfg.Jupyter, Dir: dir},
	}
}

func rendererFor(cfg *config.Config, dir string) runner.Renderer {
	if pipelineRenderer != nil {
		return pipelineRenderer
	}
	return &pytools.NotebookTool{Jupyter: cfg.Jupyter, Dir: dir}
}

func recorderFor(dir string) RunRecorder {
	if historyStore != nil {
		return historyStore
	}
	return state.NewStore(dir)
}

// runPipeline executes one run mode end to end: sweep stale artifacts
// from the output directory, build the task sequence, run it in order
// with fail-fast semantics, and record the run in the history ledger.
func runPipeline(cmd *cobra.Command, mode string, flagTimeout time.Duration) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return err
	}

	tasks, verb, err := sequenceFor(cfg, mode)
	if err != nil {
		return err
	}

	outDir := filepath.Join(dir, cfg.OutputDir)
	removed, err := workspace.CleanOutputs(outDir)
	if err != nil {
		return err
	}
	if removed > 0 {
		fmt.Printf("Removed %d stale artifact(s) from %s/\n", removed, cfg.OutputDir)
	}

	timeout := time.Duration(cfg.TaskTimeout)
	if cmd.Flags().Changed("timeout") {
		timeout = flagTimeout
	}

	onStart := func(task runner.Task) {
		fmt.Printf("%s %s ...\n", verb, task.Name)
		logging.Debug("starting task", "mode", mode, "task", task.Name)
	}

	ctx := cmdContext(cmd)
	started := time.Now()

	var results []runner.RunResult
	var runErr error
	if mode == state.ModePDFs {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outDir, err)
		}
		conv := &runner.Converter{
			Renderer: rendererFor(cfg, dir),
			OutDir:   outDir,
			Timeout:  timeout,
			OnStart:  onStart,
		}
		results, runErr = conv.ConvertAll(ctx, tasks)
	} else {
		r := &runner.Runner{
			Executor: executorFor(cfg, dir),
			Timeout:  timeout,
			OnStart:  onStart,
		}
		results, runErr = r.RunSequence(ctx, tasks)
	}

	recordRun(dir, mode, started, results, runErr)

	if runErr != nil {
		return runErr
	}

	if mode == state.ModePDFs {
		fmt.Printf("Rendered %d notebook(s) to %s/\n", len(results), cfg.OutputDir)
	} else {
		fmt.Printf("Completed %d task(s)\n", len(results))
	}
	return nil
}

// sequenceFor maps a run mode to its configured task sequence and the
// progress verb printed before each task.
func sequenceFor(cfg *config.Config, mode string) ([]runner.Task, string, error) {
	switch mode {
	case state.ModeScripts:
		if len(cfg.Scripts) == 0 {
			return nil, "", fmt.Errorf("no scripts configured in %s/config.yaml", config.Dir)
		}
		return runner.NewSequence(runner.KindScript, cfg.Scripts), "Running", nil
	case state.ModeNotebooks:
		if len(cfg.Notebooks) == 0 {
			return nil, "", fmt.Errorf("no notebooks configured in %s/config.yaml", config.Dir)
		}
		return runner.NewSequence(runner.KindNotebook, cfg.Notebooks), "Executing", nil
	case state.ModePDFs:
		if len(cfg.Notebooks) == 0 {
			return nil, "", fmt.Errorf("no notebooks configured in %s/config.yaml", config.Dir)
		}
		return runner.NewSequence(runner.KindNotebook, cfg.Notebooks), "Rendering", nil
	}
	return nil, "", fmt.Errorf("unknown run mode %q", mode)
}

// recordRun appends the run to the history ledger. The ledger is
// informational, so a failed write warns and never fails the run.
func recordRun(dir, mode string, started time.Time, results []runner.RunResult, runErr error) {
	run := state.Run{
		ID:        state.NewRunID(started),
		Mode:      mode,
		StartedAt: started,
		Duration:  time.Since(started),
		Results:   toTaskResults(results),
	}

	var failure *runner.TaskFailure
	if errors.As(runErr, &failure) {
		run.Failed = failure.Task.Name
	}

	if err := recorderFor(dir).AppendRun(run); err != nil {
		fmt.Printf("Warning: failed to record run history: %v\n", err)
		logging.Warn("failed to record run history", "error", err)
	}
}

func toTaskResults(results []runner.RunResult) []state.TaskResult {
	out := make([]state.TaskResult, len(results))
	for i, res := range results {
		out[i] = state.TaskResult{Name: res.Task.Name, Status: res.Status, ExitCode: res.ExitCode}
	}
	return out
}
