package app

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chimera-tools/chimera-format/internal/fs"
	"github.com/chimera-tools/chimera-format/internal/launcher"
)

const testFormatConfig = `{"style": {"BasedOnStyle": "Google", "ColumnLimit": 120}, "directories": ["Chimera"]}`

// argsHelper prints each argument on its own line.
const argsHelper = `for a in "$@"; do echo "$a"; done`

// mockEnvProvider is a test implementation of fs.EnvProvider.
type mockEnvProvider struct {
	values map[string]string
}

func (m *mockEnvProvider) Get(key string) string {
	if m.values == nil {
		return ""
	}
	return m.values[key]
}

// setupLauncherDir creates a launcher directory holding the formatting
// configuration and a shell helper in the default CommonTools location.
func setupLauncherDir(t *testing.T, helperBody string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell helpers are not supported on windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, launcher.ConfigFileName), []byte(testFormatConfig), 0o600))

	toolsDir := filepath.Join(dir, launcher.HelperDirName)
	require.NoError(t, os.Mkdir(toolsDir, 0o755))
	//nolint:gosec // need executable permission for the fake helper
	require.NoError(t, os.WriteFile(filepath.Join(toolsDir, launcher.HelperName),
		[]byte("#!/bin/sh\n"+helperBody+"\n"), 0o755))
	return dir
}

func envFor(dir string, extra ...string) *mockEnvProvider {
	values := map[string]string{fs.RootDirEnvVar: dir}
	for i := 0; i+1 < len(extra); i += 2 {
		values[extra[i]] = extra[i+1]
	}
	return &mockEnvProvider{values: values}
}


func newLevel() *slog.LevelVar {
	l := &slog.LevelVar{}
	l.Set(slog.LevelInfo)
	return l
}
