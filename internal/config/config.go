// Package config loads the optional launcher settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const SettingsFile = "chimera-format.yml"

// DefaultDebounce is the quiet period the watcher waits for before re-running.
const DefaultDebounce = 250 * time.Millisecond

// DefaultExtensions are the C and C++ source extensions watched by default.
var DefaultExtensions = []string{".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx"}

// DefaultSettingsContent is written by WriteDefault.
const DefaultSettingsContent = `# chimera-format launcher settings
#
# Every key is optional.

# Path to the formatting helper. Relative paths are resolved against the
# launcher directory. Defaults to CommonTools/run_clangformat.
# helper: "CommonTools/run_clangformat"

# Append structured (JSON) logs to this file.
# logFile: ".chimera-format.log"

watch:
  # Source files that trigger a re-run.
  extensions: [".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx"]
  # Directory names that are never watched.
  exclude: ["build", "artifacts"]
  debounce: "250ms"
`

type WatchSettings struct {
	Extensions  []string      `yaml:"extensions"`
	Exclude     []string      `yaml:"exclude"`
	DebounceRaw string        `yaml:"debounce"`
	Debounce    time.Duration `yaml:"-"`
}

type Settings struct {
	Helper  string        `yaml:"helper"`
	LogFile string        `yaml:"logFile"`
	Watch   WatchSettings `yaml:"watch"`
	Path    string        `yaml:"-"` // set when the settings came from a file
}

// Default returns the settings used when no settings file exists.
func Default() *Settings {
	s := &Settings{}
	_ = s.Validate()
	return s
}

// Load reads SettingsFile from dir. A missing file is not an error.
func Load(dir string) (*Settings, error) {
	path := filepath.Join(dir, SettingsFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	var s Settings
	if err = yaml.Unmarshal(data, &s); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}
	if vErr := s.Validate(); vErr != nil {
		return nil, vErr
	}
	s.Path = path
	return &s, nil
}

// WriteDefault writes DefaultSettingsContent to SettingsFile in dir and returns
// the path written. An existing settings file is left alone.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, SettingsFile)
	if _, err := os.Stat(path); err == nil {
		return "", &SettingsExistError{Path: path}
	}
	if err := os.WriteFile(path, []byte(DefaultSettingsContent), 0o600); err != nil {
		return "", fmt.Errorf("failed to write settings file: %w", err)
	}
	return path, nil
}

// Validate fills in defaults and checks the watch section.
func (s *Settings) Validate() error {
	w := &s.Watch
	if len(w.Extensions) == 0 {
		w.Extensions = slices.Clone(DefaultExtensions)
	}
	for i, ext := range w.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return &InvalidPropertyError{
				Property: fmt.Sprintf("watch.extensions[%d]", i),
				Value:    ext,
				Reason:   "must name a file extension",
			}
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		w.Extensions[i] = strings.ToLower(ext)
	}

	w.Debounce = DefaultDebounce
	if w.DebounceRaw != "" {
		d, err := time.ParseDuration(w.DebounceRaw)
		if err != nil {
			return &InvalidPropertyError{Property: "watch.debounce", Value: w.DebounceRaw, Reason: err.Error()}
		}
		if d <= 0 {
			return &InvalidPropertyError{Property: "watch.debounce", Value: w.DebounceRaw, Reason: "must be positive"}
		}
		w.Debounce = d
	}
	return nil
}

// ResolveLogFile returns the log file path, relative paths taken from dir.
// An empty result disables file logging.
func (s *Settings) ResolveLogFile(dir string) string {
	if s.LogFile == "" || filepath.IsAbs(s.LogFile) {
		return s.LogFile
	}
	return filepath.Join(dir, s.LogFile)
}
