package fs

import (
	"log/slog"
	"os"
)

// EnvProvider is the launcher's view of the process environment. The
// variables it reads are all prefixed CHIMERA_FORMAT_: RootDirEnvVar here,
// plus the helper, log file and debug overrides named by the packages that
// consume them. Tests substitute a map-backed provider.
type EnvProvider interface {
	// Get returns the value of key, or "" when it is unset.
	Get(key string) string
}

// OSEnvProvider reads the real process environment.
type OSEnvProvider struct{}

func NewEnvProvider() *OSEnvProvider {
	return &OSEnvProvider{}
}

func (*OSEnvProvider) Get(key string) string {
	return os.Getenv(key)
}

// SetVars returns a log attribute for each of keys that env has a non-empty
// value for, in the order given.
func SetVars(env EnvProvider, keys ...string) []slog.Attr {
	var attrs []slog.Attr
	for _, k := range keys {
		if v := env.Get(k); v != "" {
			attrs = append(attrs, slog.String(k, v))
		}
	}
	return attrs
}
