package app

import "fmt"

// ExitCodeError carries a non-zero status reported by the formatting helper.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("formatting helper exited with status %d", e.Code)
}

// InspectFailedError is returned by inspect when the configuration is
// missing, malformed or fails schema validation.
type InspectFailedError struct {
	Path   string
	Reason string
}

func (e *InspectFailedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}
