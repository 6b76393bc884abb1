// Package venv detects whether an isolated Python environment is active
// in the calling shell and enforces activation preconditions. Operations
// that mutate the environment guard themselves with RequireActive or
// RequireInactive before touching anything.
package venv

import (
	"errors"
	"os"
)

// EnvVar is the variable an activate script exports. Activation state is
// judged solely by its presence.
const EnvVar = "VIRTUAL_ENV"

// State captures the activation state observed at the process boundary.
// It is read once per command and passed down so guard checks and the
// operations they protect see the same snapshot.
type State struct {
	Active bool
	Path   string // root of the active environment, empty when inactive
}

// Detect reads the activation state from the process environment.
func Detect() State {
	path := os.Getenv(EnvVar)
	return State{Active: path != "", Path: path}
}

// StateError reports a violated activation precondition.
type StateError struct {
	// WantActive is the activation state the operation required.
	WantActive bool
}

func (e *StateError) Error() string {
	if e.WantActive {
		return "no virtualenv is active (activate one first, e.g. source .venv/bin/activate)"
	}
	return "a virtualenv is active (run deactivate first)"
}

// IsStateError checks if an error is a StateError.
func IsStateError(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

// RequireActive returns an error unless an environment is active.
func RequireActive(st State) error {
	if !st.Active {
		return &StateError{WantActive: true}
	}
	return nil
}

// RequireInactive returns an error while an environment is active.
func RequireInactive(st State) error {
	if st.Active {
		return &StateError{WantActive: false}
	}
	return nil
}
