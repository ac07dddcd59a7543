package contact

import (
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/portfolio/core/sanitizer"
)

// Message is what a visitor submits through the contact form.
type Message struct {
	Name    string `json:"name" form:"name" sanitize:"no_control,single_line" validate:"required,max=100"`
	Email   string `json:"email" form:"email" sanitize:"no_control,trim_lower" validate:"required,email,max=254"`
	Subject string `json:"subject" form:"subject" sanitize:"no_control,single_line" validate:"required,max=200"`
	Message string `json:"message" form:"message" sanitize:"no_control,text" validate:"required,max=5000"`
}

var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// ValidationError maps each invalid field (by its JSON name) to the failed rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Normalize sanitizes the message in place.
func (m *Message) Normalize() {
	_ = sanitizer.Struct(m)
}

// Validate checks the message. The error wraps ErrInvalidMessage and a
// *ValidationError.
func (m Message) Validate() error {
	err := validate.Struct(m)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return errors.Join(ErrInvalidMessage, &ValidationError{Fields: fields})
}
