// Package fs provides file system helpers for locating the launcher and its
// companion files.
package fs

// defaultResolver is used by the package-level path functions.
var defaultResolver = NewPathResolver()

// CanonicalPath returns the canonical, absolute path by resolving symlinks.
// This is a convenience function that uses the default StandardPathResolver.
func CanonicalPath(path string) (string, error) {
	return defaultResolver.CanonicalPath(path)
}

// Abs returns the absolute path.
// This is a convenience function that uses the default StandardPathResolver.
func Abs(path string) (string, error) {
	return defaultResolver.Abs(path)
}

// CanonicalOrAbs returns the canonical path when the path exists, falling
// back to the absolute path when it does not.
func CanonicalOrAbs(path string) (string, error) {
	if c, err := defaultResolver.CanonicalPath(path); err == nil {
		return c, nil
	}
	return defaultResolver.Abs(path)
}
