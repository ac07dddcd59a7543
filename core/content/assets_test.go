package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/portfolio/core/content"
)

func TestNormalizeBasePath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"portfolio-mui", "/portfolio-mui/"},
		{"/portfolio-mui", "/portfolio-mui/"},
		{"/portfolio-mui/", "/portfolio-mui/"},
		{"//portfolio-mui//", "/portfolio-mui/"},
		{"https://cdn.example.com/site", "https://cdn.example.com/site/"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, content.NormalizeBasePath(tt.in))
		})
	}
}

func TestWithBase(t *testing.T) {
	const base = "/portfolio-mui/"

	tests := []struct {
		name, in, want string
	}{
		{"root relative", "/images/a.png", "/portfolio-mui/images/a.png"},
		{"https url", "https://cdn.example.com/a.png", "https://cdn.example.com/a.png"},
		{"http url", "http://example.com/a.png", "http://example.com/a.png"},
		{"data uri", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"protocol relative", "//cdn.example.com/a.png", "//cdn.example.com/a.png"},
		{"plain text", "Software engineer", "Software engineer"},
		{"relative path", "images/a.png", "images/a.png"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.WithBase(tt.in, base))
		})
	}

	t.Run("root base leaves paths unchanged", func(t *testing.T) {
		assert.Equal(t, "/images/a.png", content.WithBase("/images/a.png", "/"))
		assert.Equal(t, "/images/a.png", content.WithBase("/images/a.png", ""))
	})

	t.Run("protocol relative urls keep their host", func(t *testing.T) {
		for _, b := range []string{"/", "portfolio-mui", "https://example.com/site"} {
			assert.Equal(t, "//cdn.example.com/a.png", content.WithBase("//cdn.example.com/a.png", b), b)
		}
	})
}

func TestNormalizeAssets(t *testing.T) {
	input := map[string]any{
		"profilePicture": "/images/me.jpg",
		"name":           "Jane",
		"projects": []any{
			map[string]any{
				"images": []any{"/img/1.png", "https://cdn.example.com/2.png"},
				"nested": map[string]any{
					"deeper": []any{[]any{"/a/b.svg"}},
				},
			},
		},
		"year":   float64(2024),
		"active": true,
		"none":   nil,
	}

	got := content.NormalizeAssets(input, "/base/")

	want := map[string]any{
		"profilePicture": "/base/images/me.jpg",
		"name":           "Jane",
		"projects": []any{
			map[string]any{
				"images": []any{"/base/img/1.png", "https://cdn.example.com/2.png"},
				"nested": map[string]any{
					"deeper": []any{[]any{"/base/a/b.svg"}},
				},
			},
		},
		"year":   float64(2024),
		"active": true,
		"none":   nil,
	}
	assert.Equal(t, want, got)

	t.Run("input is not modified", func(t *testing.T) {
		assert.Equal(t, "/images/me.jpg", input["profilePicture"])
	})
}
