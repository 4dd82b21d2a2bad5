// Package helper runs the external formatting helper as a child process.
package helper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/chimera-tools/chimera-format/internal/launcher"
)

// HelperEnvVar overrides the helper program location.
const HelperEnvVar = "CHIMERA_FORMAT_HELPER"

// WaitDelay is how long an interrupted helper gets to exit on its own before
// it is killed.
const WaitDelay = 5 * time.Second

// Ensure the interface is satisfied.
var _ launcher.Collaborator = (*ExecCollaborator)(nil)

// ExecCollaborator is the Collaborator that runs the helper program.
type ExecCollaborator struct {
	// Path is the helper program. A bare name is looked up on PATH.
	Path string
	// Dir is the working directory of the child; empty means the caller's.
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecCollaborator creates an ExecCollaborator wired to the given streams.
func NewExecCollaborator(path string, stdin io.Reader, stdout, stderr io.Writer) *ExecCollaborator {
	return &ExecCollaborator{Path: path, Stdin: stdin, Stdout: stdout, Stderr: stderr}
}

// SignalError reports a helper that was terminated by a signal.
type SignalError struct {
	Path   string
	Status string
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("formatting helper %s terminated: %s", e.Path, e.Status)
}

// Run executes the helper with args. A non-zero exit is returned as the
// status with a nil error. Failures to start the helper are returned as-is.
func (c *ExecCollaborator) Run(ctx context.Context, args []string) (int, error) {
	//nolint:gosec // the helper path comes from the launcher's own configuration
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	// Interrupt rather than kill on cancellation so the helper can report its
	// own status.
	cmd.Cancel = func() error {
		if runtime.GOOS == "windows" {
			return cmd.Process.Kill()
		}
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = WaitDelay

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 1, &SignalError{Path: c.Path, Status: exitErr.String()}
	}
	return 0, err
}

// Resolve picks the helper program: envValue, then settingsValue, then the
// default location below launcherDir. Relative paths containing a separator
// are taken relative to launcherDir; bare names are left for PATH lookup.
func Resolve(launcherDir, envValue, settingsValue string) (string, error) {
	for _, v := range []string{envValue, settingsValue} {
		if v == "" {
			continue
		}
		if filepath.IsAbs(v) || !strings.ContainsRune(filepath.ToSlash(v), '/') {
			return v, nil
		}
		return filepath.Join(launcherDir, v), nil
	}
	return launcher.HelperPath(launcherDir)
}
