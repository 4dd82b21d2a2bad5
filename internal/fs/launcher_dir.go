package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootDirEnvVar overrides the launcher directory. It is mainly useful when the
// binary is run from a build cache (go run, go test) rather than installed
// alongside its configuration.
const RootDirEnvVar = "CHIMERA_FORMAT_ROOT"

// executable is a variable for os.Executable to allow mocking in tests.
var executable = os.Executable

// ExecutableDir returns the directory containing the running executable,
// with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	exe, err = CanonicalOrAbs(exe)
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LauncherDir returns the directory that anchors all relative lookups: the
// value of RootDirEnvVar when set, otherwise the executable's directory.
func LauncherDir(env EnvProvider) (string, error) {
	if dir := env.Get(RootDirEnvVar); dir != "" {
		return Abs(dir)
	}
	return ExecutableDir()
}
