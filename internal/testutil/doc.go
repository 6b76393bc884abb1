// Package testutil provides shared test utilities for labrun.
//
// # Environment Helpers
//
// The env.go file provides project fixtures:
//
//   - SetupProject(t) - creates a temp project with a .labrun config,
//     pipeline files, and an output directory
//   - WriteProjectFile(t, base, rel, content) - writes a file inside a
//     test project, creating parent directories
//
// # Fixtures
//
// The fixtures.go file provides sample data:
//
//   - SampleConfigYAML - the config written by SetupProject
//   - SampleManifest - a small pinned requirements file
//
// # Usage
//
// Import the package in your test files:
//
//	import "github.com/thruflo/labrun/internal/testutil"
//
// Then use the helpers:
//
//	func TestSomething(t *testing.T) {
//	    dir := testutil.SetupProject(t)
//	    testutil.WriteProjectFile(t, dir, "outputs/stale.pdf", "x")
//	    // ... run test ...
//	}
package testutil
