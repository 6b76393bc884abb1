// Package pytools invokes the Python toolchain (interpreter, Jupyter,
// pip) as blocking subprocesses. Tools inherit the caller's environment,
// so they operate on whatever virtualenv the shell has activated;
// activation checks belong to the callers.
package pytools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/thruflo/labrun/internal/runner"
)

// Default tool binaries, resolved through PATH.
const (
	defaultPython  = "python3"
	defaultJupyter = "jupyter"
)

// run invokes a tool as a blocking subprocess, streaming its output,
// and reports the process exit code. A non-nil error means the process
// did not run to completion on its own: it could not start, or the
// context expired and it was killed.
func run(ctx context.Context, dir string, stdout, stderr io.Writer, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctx.Err() != nil {
		return -1, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("failed to run %s: %w", name, err)
}

// stream returns w, or std when no writer was configured.
func stream(w io.Writer, std io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return std
}

// Toolchain dispatches each task to the tool matching its kind. It is
// the production Executor behind the scripts and notebooks commands.
type Toolchain struct {
	Scripts   *ScriptTool
	Notebooks *NotebookTool
}

// Execute runs the task with the tool for its kind.
func (tc *Toolchain) Execute(ctx context.Context, task runner.Task) (int, error) {
	switch task.Kind {
	case runner.KindScript:
		return tc.Scripts.Execute(ctx, task)
	case runner.KindNotebook:
		return tc.Notebooks.Execute(ctx, task)
	}
	return -1, fmt.Errorf("unknown task kind %q", task.Kind)
}

var (
	_ runner.Executor = (*Toolchain)(nil)
	_ runner.Executor = (*ScriptTool)(nil)
	_ runner.Executor = (*NotebookTool)(nil)
	_ runner.Renderer = (*NotebookTool)(nil)
)
