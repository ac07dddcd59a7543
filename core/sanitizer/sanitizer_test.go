package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/sanitizer"
)

func TestStringSanitizers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jane@example.com", sanitizer.TrimLower("  Jane@Example.COM "))
	assert.Equal(t, "Hello world", sanitizer.SingleLine(" Hello\r\n\t world\n"))
	assert.Equal(t, "a\tb\nc", sanitizer.RemoveControlChars("a\x00\tb\nc\x07"))
	assert.Equal(t, "first line\n\nsecond line", sanitizer.Text("  first   line  \r\n\r\nsecond line\t\n "))
	assert.Equal(t, "héll", sanitizer.MaxLength("héllo", 4))
	assert.Equal(t, "", sanitizer.MaxLength("abc", 0))
	assert.Equal(t, "مرحبا", sanitizer.MaxLength("مرحبا", 10))
}

func TestStruct(t *testing.T) {
	t.Parallel()

	type inner struct {
		Note string `sanitize:"trim"`
	}
	type form struct {
		Name    string `sanitize:"no_control,single_line"`
		Email   string `sanitize:"trim_lower"`
		Body    string `sanitize:"text,max:5"`
		Raw     string
		Skipped string `sanitize:"-"`
		Nested  inner
		Ptr     *inner
		hidden  string
	}

	f := form{
		Name:    " Jane\x00\nDoe ",
		Email:   " JANE@EXAMPLE.COM",
		Body:    "  hello world ",
		Raw:     "  raw  ",
		Skipped: "  skip  ",
		Nested:  inner{Note: " n "},
		Ptr:     &inner{Note: " p "},
		hidden:  " h ",
	}
	require.NoError(t, sanitizer.Struct(&f))

	assert.Equal(t, "Jane Doe", f.Name)
	assert.Equal(t, "jane@example.com", f.Email)
	assert.Equal(t, "hello", f.Body)
	assert.Equal(t, "  raw  ", f.Raw)
	assert.Equal(t, "  skip  ", f.Skipped)
	assert.Equal(t, "n", f.Nested.Note)
	assert.Equal(t, "p", f.Ptr.Note)
	assert.Equal(t, " h ", f.hidden)
}

func TestStruct_Errors(t *testing.T) {
	t.Parallel()

	type form struct{ A string }
	assert.ErrorIs(t, sanitizer.Struct(form{}), sanitizer.ErrNotStructPointer)

	s := "x"
	assert.ErrorIs(t, sanitizer.Struct(&s), sanitizer.ErrNotStructPointer)
}

func TestRegister(t *testing.T) {
	sanitizer.Register("shout", strings.ToUpper)

	type form struct {
		A string `sanitize:"trim,shout"`
	}
	f := form{A: " hi "}
	require.NoError(t, sanitizer.Struct(&f))
	assert.Equal(t, "HI", f.A)
}
