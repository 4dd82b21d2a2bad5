package config

import (
	"fmt"
)

type InvalidYAMLError struct {
	Wrapped error
	Path    string
}

func (e *InvalidYAMLError) Error() string {
	return fmt.Sprintf("%s is not a valid yaml document: %v", e.Path, e.Wrapped)
}

func (e *InvalidYAMLError) Unwrap() error { return e.Wrapped }

type InvalidPropertyError struct {
	Property string
	Value    string
	Reason   string
}

func (e *InvalidPropertyError) Error() string {
	return fmt.Sprintf("%s property %s has invalid value '%s': %s", SettingsFile, e.Property, e.Value, e.Reason)
}

type SettingsExistError struct {
	Path string
}

func (e *SettingsExistError) Error() string {
	return fmt.Sprintf("settings file already exists: %s", e.Path)
}
