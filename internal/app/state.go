package app

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/chimera-tools/chimera-format/internal/config"
	"github.com/chimera-tools/chimera-format/internal/fs"
	"github.com/chimera-tools/chimera-format/internal/helper"
	"github.com/chimera-tools/chimera-format/internal/launcher"
)

const DebugEnvVar = "CHIMERA_FORMAT_DEBUG"

// state holds the process-wide inputs and the dependencies built from them
// once a command that needs them starts.
type state struct {
	env    fs.EnvProvider
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	level  *slog.LevelVar

	dir        string
	settings   *config.Settings
	logger     *slog.Logger
	logCloser  io.Closer
	helperPath string
	launcher   *launcher.Launcher
}

// init resolves the launcher directory, loads settings, sets up logging and
// wires the launcher to the helper program.
func (s *state) init() error {
	if s.launcher != nil {
		return nil
	}

	if debugEnabled(s.env.Get(DebugEnvVar)) {
		s.level.Set(slog.LevelDebug)
	}

	dir, err := fs.LauncherDir(s.env)
	if err != nil {
		return err
	}

	settings, err := config.Load(dir)
	if err != nil {
		return err
	}

	logPath := s.env.Get(LogEnvVar)
	if logPath == "" {
		logPath = settings.ResolveLogFile(dir)
	}
	logger, closer, err := setupLogger(s.stderr, s.level, logPath)
	if err != nil {
		logger.Warn("logging to file disabled", "error", err)
	}

	helperPath, err := helper.Resolve(dir, s.env.Get(helper.HelperEnvVar), settings.Helper)
	if err != nil {
		return err
	}
	collab := helper.NewExecCollaborator(helperPath, s.stdin, s.stdout, s.stderr)

	s.dir = dir
	s.settings = settings
	s.logger = logger
	s.logCloser = closer
	s.helperPath = helperPath
	s.launcher = launcher.New(dir, collab, logger)
	if overrides := fs.SetVars(s.env, fs.RootDirEnvVar, helper.HelperEnvVar, LogEnvVar, DebugEnvVar); len(overrides) > 0 {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "environment overrides", overrides...)
	}
	logger.Debug("launcher ready", "dir", dir, "helper", helperPath, "settings", settings.Path)
	return nil
}

// Close releases the log file, if one was opened.
func (s *state) Close() {
	if s.logCloser != nil {
		_ = s.logCloser.Close()
		s.logCloser = nil
	}
}

func debugEnabled(v string) bool {
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}
