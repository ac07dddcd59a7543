package content

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// Schema returns the JSON Schema every CV document must satisfy.
func Schema() string {
	return schemaJSON
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Source string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed")
	if ve.Source != "" {
		sb.WriteString(" for ")
		sb.WriteString(ve.Source)
	}
	sb.WriteString(":\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks a raw JSON document against the CV schema.
// It returns a *ValidationError for schema violations and ErrInvalidDocument
// (wrapped) when the input is not JSON at all.
func Validate(source string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDocument, source, err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Source: source,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
