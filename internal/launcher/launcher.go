// Package launcher locates the formatting configuration that ships next to the
// launcher and hands it, together with the caller's arguments, to the
// formatting helper.
package launcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/chimera-tools/chimera-format/internal/fs"
)

const (
	// ConfigFileName is the formatting configuration expected in the launcher directory.
	ConfigFileName = "chimera_clangformat.json"
	// FlagToken precedes the configuration path in the helper's arguments.
	FlagToken = "-f"
	// HelperDirName is the directory, relative to the launcher, holding the helper.
	HelperDirName = "CommonTools"
	// HelperName is the helper program's base name.
	HelperName = "run_clangformat"
)

// Collaborator runs the formatting work. It receives the full argument list
// and returns the status the process should exit with.
type Collaborator interface {
	Run(ctx context.Context, args []string) (int, error)
}

// ConfigPath returns the absolute path of the formatting configuration in dir.
func ConfigPath(dir string) (string, error) {
	return filepath.Abs(filepath.Join(dir, ConfigFileName))
}

// HelperPath returns the path of the helper program below dir.
func HelperPath(dir string) (string, error) {
	name := HelperName
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return fs.CanonicalOrAbs(filepath.Join(dir, HelperDirName, name))
}

// Augment returns a new slice holding args followed by FlagToken and
// configPath. args itself is left untouched.
func Augment(args []string, configPath string) []string {
	out := make([]string, 0, len(args)+2)
	out = append(out, args...)
	return append(out, FlagToken, configPath)
}

// Launcher delegates a formatting run to a Collaborator.
type Launcher struct {
	dir          string
	collaborator Collaborator
	logger       *slog.Logger
}

// New creates a Launcher anchored at dir.
func New(dir string, c Collaborator, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Launcher{
		dir:          dir,
		collaborator: c,
		logger:       logger.With("component", "launcher"),
	}
}

// Dir returns the launcher directory.
func (l *Launcher) Dir() string {
	return l.dir
}

// ConfigPath returns the absolute configuration path for this launcher.
func (l *Launcher) ConfigPath() (string, error) {
	return ConfigPath(l.dir)
}

// Run appends the configuration flag to args and runs the collaborator,
// returning its status. A missing configuration file is reported with the
// error from os.Stat, unchanged.
func (l *Launcher) Run(ctx context.Context, args []string) (int, error) {
	cfgPath, err := l.ConfigPath()
	if err != nil {
		return 0, err
	}
	if _, err = os.Stat(cfgPath); err != nil {
		return 0, err
	}

	argv := Augment(args, cfgPath)
	l.logger.Debug("delegating to formatting helper", "config", cfgPath, "args", argv)

	code, err := l.collaborator.Run(ctx, argv)
	if err != nil {
		return code, err
	}
	l.logger.Debug("formatting helper finished", "status", code)
	return code, nil
}
