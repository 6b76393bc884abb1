package pytools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thruflo/labrun/internal/manifest"
)

// Pip drives the package manager through the configured interpreter
// with python -m pip, so packages land in whatever environment the
// shell activated.
type Pip struct {
	// Python is the interpreter binary. Defaults to python3.
	Python string
	// Dir is the working directory for invocations.
	Dir string
	// Stdout and Stderr receive pip's output during installs. They
	// default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// ListInstalled returns the environment's installed packages as pinned
// specifiers, via pip freeze.
func (p *Pip) ListInstalled(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, p.python(), "-m", "pip", "freeze")
	cmd.Dir = p.Dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = stream(p.Stderr, os.Stderr)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pip freeze failed: %w", err)
	}

	var specs []string
	for _, line := range strings.Split(out.String(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			specs = append(specs, line)
		}
	}
	return specs, nil
}

// Install installs a single specifier via pip install.
func (p *Pip) Install(ctx context.Context, specifier string) error {
	code, err := run(ctx, p.Dir, stream(p.Stdout, os.Stdout), stream(p.Stderr, os.Stderr),
		p.python(), "-m", "pip", "install", specifier)
	if err != nil {
		return err
	}
	if code != 0 {
		return fmt.Errorf("exit status %d", code)
	}
	return nil
}

func (p *Pip) python() string {
	if p.Python == "" {
		return defaultPython
	}
	return p.Python
}

var _ manifest.PackageManager = (*Pip)(nil)
