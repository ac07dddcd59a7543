package content

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// DefaultLang is the language whose document backs every unknown locale.
const DefaultLang = "en"

// Library holds one normalized Document per language.
// It is immutable after creation and safe for concurrent use.
type Library struct {
	docs        map[string]*Document
	defaultLang string
	basePath    string
}

// Option configures a Library during construction.
type Option func(*Library)

// WithBasePath sets the deployment sub-path prepended to root-relative asset paths.
func WithBasePath(base string) Option {
	return func(l *Library) {
		l.basePath = NormalizeBasePath(base)
	}
}

// WithDefaultLanguage sets the language used when a locale has no document.
func WithDefaultLanguage(lang string) Option {
	return func(l *Library) {
		if lang != "" {
			l.defaultLang = lang
		}
	}
}

// Load reads every file matching pattern from fsys. File names must look like
// "cv.<lang>.json". Each file is validated against the schema, asset paths are
// normalized for the base path, and the result is decoded into a Document.
func Load(fsys fs.FS, pattern string, opts ...Option) (*Library, error) {
	l := &Library{
		docs:        make(map[string]*Document),
		defaultLang: DefaultLang,
		basePath:    "/",
	}
	for _, opt := range opts {
		opt(l)
	}

	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid content pattern %q: %w", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoDocuments, pattern)
	}

	for _, name := range files {
		lang := LanguageFromFilename(name)
		if lang == "" {
			return nil, fmt.Errorf("%w: cannot derive language from %s", ErrInvalidDocument, name)
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		doc, err := Parse(name, data, l.basePath)
		if err != nil {
			return nil, err
		}
		l.docs[lang] = doc
	}

	if _, ok := l.docs[l.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingDefault, l.defaultLang)
	}

	return l, nil
}

// MustLoad is like Load but panics on error. Intended for application startup.
func MustLoad(fsys fs.FS, pattern string, opts ...Option) *Library {
	l, err := Load(fsys, pattern, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// Parse validates a raw document, rewrites root-relative asset paths under base
// and decodes it. source is only used in error messages.
func Parse(source string, data []byte, base string) (*Document, error) {
	if err := Validate(source, data); err != nil {
		return nil, err
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, source, err)
	}

	normalized, err := json.Marshal(NormalizeAssets(tree, base))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, source, err)
	}

	var doc Document
	if err := json.Unmarshal(normalized, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDocument, source, err)
	}

	// The generic tree loses object key order; skill categories render in source order.
	var order struct {
		Skills Skills `json:"skills"`
	}
	if err := json.Unmarshal(data, &order); err == nil {
		doc.Skills = doc.Skills.ordered(order.Skills.Keys())
	}

	return &doc, nil
}

// LanguageFromFilename extracts "fr" from "data/cv.fr.json".
func LanguageFromFilename(name string) string {
	base := strings.TrimSuffix(path.Base(name), path.Ext(name))
	idx := strings.LastIndex(base, ".")
	if idx < 0 || idx == len(base)-1 {
		return ""
	}
	return base[idx+1:]
}

// Get returns the document for lang, or the default language's document when
// lang has none. It never returns nil.
func (l *Library) Get(lang string) *Document {
	if doc, ok := l.docs[lang]; ok {
		return doc
	}
	return l.docs[l.defaultLang]
}

// Has reports whether lang has its own document.
func (l *Library) Has(lang string) bool {
	_, ok := l.docs[lang]
	return ok
}

// Languages returns the languages with a document, default first.
func (l *Library) Languages() []string {
	others := make([]string, 0, len(l.docs))
	for lang := range l.docs {
		if lang != l.defaultLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)
	return append([]string{l.defaultLang}, others...)
}

// BasePath returns the normalized deployment base path.
func (l *Library) BasePath() string {
	return l.basePath
}

// Asset prefixes a root-relative path with the library's base path.
func (l *Library) Asset(p string) string {
	return WithBase(p, l.basePath)
}
