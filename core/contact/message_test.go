package contact_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/contact"
)

func validMessage() contact.Message {
	return contact.Message{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I liked your projects.",
	}
}

func TestMessageNormalize(t *testing.T) {
	t.Parallel()

	msg := contact.Message{
		Name:    "  Jane\nDoe ",
		Email:   " Jane@Example.com ",
		Subject: "Hi\r\nthere\x00",
		Message: "  line one  \r\nline two\t ",
	}
	msg.Normalize()

	assert.Equal(t, "Jane Doe", msg.Name)
	assert.Equal(t, "jane@example.com", msg.Email)
	assert.Equal(t, "Hi there", msg.Subject)
	assert.Equal(t, "line one\nline two", msg.Message)
}

func TestMessageValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, validMessage().Validate())

	tests := []struct {
		name   string
		mutate func(*contact.Message)
		field  string
		rule   string
	}{
		{"missing name", func(m *contact.Message) { m.Name = "" }, "name", "required"},
		{"bad email", func(m *contact.Message) { m.Email = "nope" }, "email", "email"},
		{"missing subject", func(m *contact.Message) { m.Subject = "" }, "subject", "required"},
		{"long message", func(m *contact.Message) { m.Message = strings.Repeat("a", 5001) }, "message", "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := validMessage()
			tt.mutate(&msg)
			err := msg.Validate()
			require.ErrorIs(t, err, contact.ErrInvalidMessage)

			var verr *contact.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, map[string]string{tt.field: tt.rule}, verr.Fields)
		})
	}

	err := contact.Message{}.Validate()
	var verr *contact.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 4)
	assert.Contains(t, verr.Error(), "email: required")
}
