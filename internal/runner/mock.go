package runner

import "context"

// MockExecutor is a test double for Executor. It records the names of
// the tasks it is asked to run, in order, so tests can verify that a
// failed sequence never reaches later tasks.
type MockExecutor struct {
	// ExecuteFunc is called when Execute is invoked.
	// If nil, Execute reports success.
	ExecuteFunc func(ctx context.Context, task Task) (int, error)

	// Calls holds the task names in invocation order.
	Calls []string
}

// Execute records the call and delegates to ExecuteFunc.
func (m *MockExecutor) Execute(ctx context.Context, task Task) (int, error) {
	m.Calls = append(m.Calls, task.Name)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, task)
	}
	return 0, nil
}

// MockRenderer is a test double for Renderer.
type MockRenderer struct {
	// RenderFunc is called when Render is invoked.
	// If nil, Render reports success.
	RenderFunc func(ctx context.Context, task Task, outDir string) (int, error)

	// Calls holds the task names in invocation order.
	Calls []string
	// OutDirs holds the outDir passed to each call.
	OutDirs []string
}

// Render records the call and delegates to RenderFunc.
func (m *MockRenderer) Render(ctx context.Context, task Task, outDir string) (int, error) {
	m.Calls = append(m.Calls, task.Name)
	m.OutDirs = append(m.OutDirs, outDir)
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, task, outDir)
	}
	return 0, nil
}

var (
	_ Executor = (*MockExecutor)(nil)
	_ Renderer = (*MockRenderer)(nil)
)
