// Package runner sequences pipeline tasks with fail-fast semantics: a
// sequence runs strictly in order, every task waits for the previous
// one, and the first failure stops the run with the failing task
// identified. Later tasks are never started after a failure.
package runner

import (
	"context"
	"time"
)

// Executor runs a single task to completion and reports its exit code.
// A non-nil error means the task could not run at all: the process
// failed to start, or the context expired before it finished.
type Executor interface {
	Execute(ctx context.Context, task Task) (int, error)
}

// Renderer converts a single notebook task into a document in outDir,
// leaving the source notebook unmodified.
type Renderer interface {
	Render(ctx context.Context, task Task, outDir string) (int, error)
}

// Runner executes task sequences through an Executor.
type Runner struct {
	Executor Executor
	// Timeout bounds each task invocation. Zero means unbounded, so a
	// hung task hangs the whole sequence.
	Timeout time.Duration
	// OnStart, when set, is called just before each task runs.
	OnStart func(Task)
}

// RunSequence runs tasks in order and returns one result per task that
// was started. On failure the returned error is a *TaskFailure naming
// the failing task, and the result slice ends with that task.
func (r *Runner) RunSequence(ctx context.Context, tasks []Task) ([]RunResult, error) {
	return runTasks(ctx, tasks, r.Timeout, r.OnStart, r.Executor.Execute)
}

// Converter renders notebook sequences to documents with the same
// fail-fast contract as Runner.
type Converter struct {
	Renderer Renderer
	// OutDir is where rendered documents are written.
	OutDir  string
	Timeout time.Duration
	OnStart func(Task)
}

// ConvertAll renders tasks in order, stopping at the first failure.
func (c *Converter) ConvertAll(ctx context.Context, tasks []Task) ([]RunResult, error) {
	invoke := func(ctx context.Context, task Task) (int, error) {
		return c.Renderer.Render(ctx, task, c.OutDir)
	}
	return runTasks(ctx, tasks, c.Timeout, c.OnStart, invoke)
}

type invokeFunc func(ctx context.Context, task Task) (int, error)

func runTasks(ctx context.Context, tasks []Task, timeout time.Duration, onStart func(Task), invoke invokeFunc) ([]RunResult, error) {
	results := make([]RunResult, 0, len(tasks))
	for _, task := range tasks {
		if onStart != nil {
			onStart(task)
		}
		code, err := invokeOne(ctx, task, timeout, invoke)
		if err != nil || code != 0 {
			results = append(results, RunResult{Task: task, Status: StatusFailed, ExitCode: code})
			return results, &TaskFailure{Task: task, ExitCode: code, Err: err}
		}
		results = append(results, RunResult{Task: task, Status: StatusSucceeded})
	}
	return results, nil
}

// invokeOne runs a single task under its own deadline, if one is set.
func invokeOne(ctx context.Context, task Task, timeout time.Duration, invoke invokeFunc) (int, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return invoke(ctx, task)
}
