package pytools

import (
	"context"
	"io"
	"os"

	"github.com/thruflo/labrun/internal/runner"
)

// ScriptTool runs Python scripts with the configured interpreter.
type ScriptTool struct {
	// Python is the interpreter binary. Defaults to python3.
	Python string
	// Dir is the working directory for invocations, normally the
	// project root so relative paths inside scripts resolve.
	Dir string
	// Stdout and Stderr receive the script's output. They default to
	// the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs the script named by the task and returns its exit code.
func (t *ScriptTool) Execute(ctx context.Context, task runner.Task) (int, error) {
	return run(ctx, t.Dir, stream(t.Stdout, os.Stdout), stream(t.Stderr, os.Stderr), t.python(), task.Name)
}

func (t *ScriptTool) python() string {
	if t.Python == "" {
		return defaultPython
	}
	return t.Python
}
