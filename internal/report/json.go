package report

import (
	"encoding/json"
	"io"

	"github.com/chimera-tools/chimera-format/internal/formatconf"
)

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

type jsonKey struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type jsonQuery struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
	Type  string `json:"type"`
	Value any    `json:"value,omitempty"`
}

type jsonSchemaResult struct {
	Path  string `json:"path"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

type jsonOutput struct {
	LauncherDir string            `json:"launcherDir"`
	ConfigPath  string            `json:"configPath"`
	HelperPath  string            `json:"helperPath"`
	Exists      bool              `json:"exists"`
	Valid       bool              `json:"valid"`
	Keys        []jsonKey         `json:"keys"`
	Queries     []jsonQuery       `json:"queries,omitempty"`
	Schema      *jsonSchemaResult `json:"schema,omitempty"`
}

func (jr *JSONReporter) Write(w io.Writer, s *formatconf.Summary) error {
	out := jsonOutput{
		LauncherDir: s.LauncherDir,
		ConfigPath:  s.ConfigPath,
		HelperPath:  s.HelperPath,
		Exists:      s.Exists,
		Valid:       s.Valid,
		Keys:        make([]jsonKey, 0, len(s.Keys)),
	}
	for _, k := range s.Keys {
		out.Keys = append(out.Keys, jsonKey(k))
	}
	for _, q := range s.Queries {
		out.Queries = append(out.Queries, jsonQuery{Path: q.Path, Found: q.Found, Type: q.Type, Value: q.Parsed})
	}
	if s.SchemaPath != "" {
		res := &jsonSchemaResult{Path: s.SchemaPath, Valid: s.SchemaErr == nil}
		if s.SchemaErr != nil {
			res.Error = s.SchemaErr.Error()
		}
		out.Schema = res
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// New returns the reporter for the given output format.
func New(format string, useColour bool) Reporter {
	if format == "json" {
		return &JSONReporter{}
	}
	return &TextReporter{UseColour: useColour}
}
