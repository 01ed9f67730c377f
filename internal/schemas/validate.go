// Package schemas provides JSON Schema validation for the idea library document.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed library.schema.json
var librarySchema string

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "schema validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(parts, "; "))
}

// ValidateLibraryDocument validates a raw library JSON document against the
// embedded idea-library schema. Returns a *ValidationError describing every
// failing field, or an error when the document is not valid JSON at all.
func ValidateLibraryDocument(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(librarySchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate library document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, re := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return verr
}
