package pytools

import (
	"context"
	"io"
	"os"

	"github.com/thruflo/labrun/internal/runner"
)

// NotebookTool executes and renders Jupyter notebooks via nbconvert.
type NotebookTool struct {
	// Jupyter is the binary invoked for nbconvert. Defaults to jupyter.
	Jupyter string
	// Dir is the working directory for invocations.
	Dir string
	// Stdout and Stderr receive nbconvert's output. They default to
	// the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Execute runs the notebook top to bottom and writes the results back
// into the notebook file itself.
func (t *NotebookTool) Execute(ctx context.Context, task runner.Task) (int, error) {
	return run(ctx, t.Dir, stream(t.Stdout, os.Stdout), stream(t.Stderr, os.Stderr), t.jupyter(), executeArgs(task.Name)...)
}

// Render converts the notebook to a PDF in outDir. The source notebook
// is not modified and its cells are not re-executed.
func (t *NotebookTool) Render(ctx context.Context, task runner.Task, outDir string) (int, error) {
	return run(ctx, t.Dir, stream(t.Stdout, os.Stdout), stream(t.Stderr, os.Stderr), t.jupyter(), renderArgs(task.Name, outDir)...)
}

func (t *NotebookTool) jupyter() string {
	if t.Jupyter == "" {
		return defaultJupyter
	}
	return t.Jupyter
}

// executeArgs builds the nbconvert invocation that executes a notebook
// in place.
func executeArgs(path string) []string {
	return []string{"nbconvert", "--to", "notebook", "--execute", "--inplace", path}
}

// renderArgs builds the nbconvert invocation that renders a notebook to
// a PDF in outDir.
func renderArgs(path, outDir string) []string {
	return []string{"nbconvert", "--to", "pdf", "--output-dir", outDir, path}
}
