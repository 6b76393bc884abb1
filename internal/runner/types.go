package runner

import (
	"errors"
	"fmt"
)

// Kind discriminates how a task is executed.
type Kind string

const (
	// KindScript runs a Python file with the configured interpreter.
	KindScript Kind = "script"
	// KindNotebook executes or renders a Jupyter notebook.
	KindNotebook Kind = "notebook"
)

// Task is one unit of pipeline work. Name is the path that identifies
// the task in config, progress output, and failure reports. Order is
// the task's zero-based position in its sequence.
type Task struct {
	Name  string
	Kind  Kind
	Order int
}

// NewSequence builds the ordered task list for one run mode. Position
// in names is position in the sequence.
func NewSequence(kind Kind, names []string) []Task {
	tasks := make([]Task, len(names))
	for i, name := range names {
		tasks[i] = Task{Name: name, Kind: kind, Order: i}
	}
	return tasks
}

// Task result status values.
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// RunResult records the outcome of one task. ExitCode is only
// meaningful when Status is StatusFailed.
type RunResult struct {
	Task     Task
	Status   string
	ExitCode int
}

// TaskFailure identifies the task that stopped a sequence. ExitCode
// carries the process exit code when the task ran and failed; Err is
// set when the task could not run at all, including timeouts.
type TaskFailure struct {
	Task     Task
	ExitCode int
	Err      error
}

func (e *TaskFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task %s failed: %v", e.Task.Name, e.Err)
	}
	return fmt.Sprintf("task %s failed with exit code %d", e.Task.Name, e.ExitCode)
}

func (e *TaskFailure) Unwrap() error {
	return e.Err
}

// IsTaskFailure checks if an error is a TaskFailure.
func IsTaskFailure(err error) bool {
	var tf *TaskFailure
	return errors.As(err, &tf)
}
