// Package formatconf inspects the formatting configuration file without
// interpreting it. The launcher never calls into this package; it backs the
// inspect command only.
package formatconf

import (
	"errors"
	"os"
	"sort"

	"github.com/tidwall/gjson"
)

// Key is a top-level member of the configuration document.
type Key struct {
	Name string
	Type string
}

// Query is the result of a gjson path lookup against the configuration.
type Query struct {
	Path   string
	Found  bool
	Value  string
	Type   string
	Parsed any
}

// Summary describes a formatting configuration file.
type Summary struct {
	LauncherDir string
	ConfigPath  string
	HelperPath  string
	Exists      bool
	Valid       bool // well-formed JSON
	IsObject    bool
	Keys        []Key
	Queries     []Query
	SchemaPath  string
	SchemaErr   error
}

// Inspect reads the configuration at configPath. A missing file is reported
// in the summary rather than as an error. When schemaPath is not empty the
// document is validated against it.
func Inspect(configPath, schemaPath string, queries []string) (*Summary, error) {
	s := &Summary{ConfigPath: configPath, SchemaPath: schemaPath}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	s.Exists = true

	if !gjson.ValidBytes(data) {
		return s, nil
	}
	s.Valid = true

	doc := gjson.ParseBytes(data)
	s.IsObject = doc.IsObject()
	if s.IsObject {
		doc.ForEach(func(k, v gjson.Result) bool {
			s.Keys = append(s.Keys, Key{Name: k.String(), Type: TypeName(v)})
			return true
		})
		sort.Slice(s.Keys, func(i, j int) bool { return s.Keys[i].Name < s.Keys[j].Name })
	}

	for _, q := range queries {
		r := doc.Get(q)
		s.Queries = append(s.Queries, Query{
			Path:   q,
			Found:  r.Exists(),
			Value:  r.String(),
			Type:   TypeName(r),
			Parsed: r.Value(),
		})
	}

	if schemaPath != "" {
		s.SchemaErr = ValidateFile(schemaPath, data)
	}
	return s, nil
}

// TypeName returns the JSON type of r.
func TypeName(r gjson.Result) string {
	switch {
	case !r.Exists():
		return "missing"
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	case r.IsBool():
		return "boolean"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.String:
		return "string"
	default:
		return "null"
	}
}
