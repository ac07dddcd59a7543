package web

import (
	"embed"
	"io/fs"

	"github.com/dmitrymomot/portfolio/core/content"
	"github.com/dmitrymomot/portfolio/core/i18n"
)

// Glob patterns of the embedded documents.
const (
	ContentPattern = "data/cv.*.json"
	LocalesPattern = "locales/*.json"
)

var (
	//go:embed data/*.json
	dataFS embed.FS

	//go:embed locales/*.json
	localesFS embed.FS

	//go:embed templates/*.html
	templatesFS embed.FS

	//go:embed static
	staticFS embed.FS
)

// ContentFS returns the embedded CV documents.
func ContentFS() fs.FS { return dataFS }

// LocalesFS returns the embedded translation dictionaries.
func LocalesFS() fs.FS { return localesFS }

// StaticFS returns the embedded static assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadTranslations builds the translation set from the embedded dictionaries.
func LoadTranslations(opts ...i18n.Option) (*i18n.I18n, error) {
	opts = append([]i18n.Option{
		i18n.WithDefaultLanguage(content.DefaultLang),
		i18n.WithTranslationsFS(localesFS, LocalesPattern),
	}, opts...)
	return i18n.New(opts...)
}

// LoadContent loads the embedded CV documents for the given base path.
func LoadContent(basePath string) (*content.Library, error) {
	return content.Load(dataFS, ContentPattern, content.WithBasePath(basePath))
}
