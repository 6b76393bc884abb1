// Package manifest snapshots the active Python environment's installed
// packages to a requirements file and replays such a file back into an
// environment. Both directions demand an active environment and fail
// before touching anything when one is missing.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/thruflo/labrun/internal/venv"
)

// PackageManager lists and installs packages in the active environment.
type PackageManager interface {
	// ListInstalled returns the installed package set as pinned
	// specifiers, in the package manager's own order.
	ListInstalled(ctx context.Context) ([]string, error)
	// Install installs exactly one specifier.
	Install(ctx context.Context, specifier string) error
}

// MissingManifestError means install ran before any snapshot existed.
type MissingManifestError struct {
	Path string
}

func (e *MissingManifestError) Error() string {
	return fmt.Sprintf("manifest %s does not exist (run export first)", e.Path)
}

// InstallError identifies the first specifier that failed to install.
type InstallError struct {
	Specifier string
	Err       error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("failed to install %q: %v", e.Specifier, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// IsMissingManifest checks if an error is a MissingManifestError.
func IsMissingManifest(err error) bool {
	var me *MissingManifestError
	return errors.As(err, &me)
}

// Export writes the installed package set to path, one pinned specifier
// per line, overwriting any previous manifest. Returns the number of
// specifiers written. An empty environment produces an empty manifest.
func Export(ctx context.Context, st venv.State, pm PackageManager, path string) (int, error) {
	if err := venv.RequireActive(st); err != nil {
		return 0, err
	}

	specs, err := pm.ListInstalled(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list installed packages: %w", err)
	}

	var sb strings.Builder
	for _, spec := range specs {
		sb.WriteString(spec)
		sb.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return 0, fmt.Errorf("failed to write manifest: %w", err)
	}
	return len(specs), nil
}

// Install installs every specifier listed in the manifest at path, one
// at a time in file order, stopping at the first failure so the broken
// specifier is identified. Returns the number of packages installed.
func Install(ctx context.Context, st venv.State, pm PackageManager, path string) (int, error) {
	if err := venv.RequireActive(st); err != nil {
		return 0, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, &MissingManifestError{Path: path}
		}
		return 0, fmt.Errorf("failed to read manifest: %w", err)
	}

	installed := 0
	for _, spec := range parseSpecifiers(data) {
		if err := pm.Install(ctx, spec); err != nil {
			return installed, &InstallError{Specifier: spec, Err: err}
		}
		installed++
	}
	return installed, nil
}

// parseSpecifiers splits manifest content into specifiers, skipping
// blank lines and # comments.
func parseSpecifiers(data []byte) []string {
	var specs []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		specs = append(specs, line)
	}
	return specs
}
