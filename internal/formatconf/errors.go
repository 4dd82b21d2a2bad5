package formatconf

import "fmt"

type SchemaLoadError struct {
	Path    string
	Wrapped error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema %s: %v", e.Path, e.Wrapped)
}

func (e *SchemaLoadError) Unwrap() error { return e.Wrapped }

type ValidationError struct {
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("configuration does not match schema: %v", e.Wrapped)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }
