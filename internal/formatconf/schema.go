package formatconf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidateFile validates the JSON document data against the JSON Schema
// stored at schemaPath.
func ValidateFile(schemaPath string, data []byte) error {
	raw, err := os.ReadFile(schemaPath)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Wrapped: err}
	}
	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Wrapped: err}
	}

	abs, err := filepath.Abs(schemaPath)
	if err != nil {
		return err
	}
	id := "file://" + filepath.ToSlash(abs)

	c := jsonschema.NewCompiler()
	if err = c.AddResource(id, schemaDoc); err != nil {
		return &SchemaLoadError{Path: schemaPath, Wrapped: err}
	}
	sch, err := c.Compile(id)
	if err != nil {
		return &SchemaLoadError{Path: schemaPath, Wrapped: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("configuration is not valid JSON: %w", err)
	}
	if err = sch.Validate(doc); err != nil {
		return &ValidationError{Wrapped: err}
	}
	return nil
}
