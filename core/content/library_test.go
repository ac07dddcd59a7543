package content_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/portfolio/core/content"
)

const enDocument = `{
  "personal": {
    "name": "Jane Doe",
    "title": "Software Engineer",
    "email": "jane@example.com",
    "portfolio": "https://jane.example.com",
    "profilePicture": "/images/profile.jpg"
  },
  "summary": "Builds things.",
  "education": [{"degree": "MSc", "institution": "Uni", "institutionLogo": "/images/uni.png", "period": "2018 - 2020"}],
  "experience": [{"position": "Engineer", "company": "Acme", "period": "2020 - now", "images": ["/images/acme-1.png"]}],
  "projects": [
    {"title": "One", "period": "2021", "description": "First", "images": ["/images/p1.png", "https://cdn.example.com/p1b.png"]},
    {"title": "Two", "period": "2022", "description": "Second"}
  ],
  "certifications": [{"name": "Cert", "issuer": "Org", "image": "data:image/png;base64,AAAA"}],
  "skills": {"languages": ["Go", "TypeScript"], "cloud": ["AWS"], "databases": ["PostgreSQL"]},
  "languages": [{"name": "English", "level": "Native"}]
}`

const frDocument = `{
  "personal": {"name": "Jane Doe", "title": "Ingénieure logiciel", "email": "jane@example.com"},
  "summary": "Construit des choses.",
  "education": [],
  "experience": [],
  "projects": [{"title": "Un", "period": "2021", "description": "Premier"}],
  "certifications": [],
  "skills": {},
  "languages": []
}`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/cv.en.json": {Data: []byte(enDocument)},
		"data/cv.fr.json": {Data: []byte(frDocument)},
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads and normalizes documents", func(t *testing.T) {
		library, err := content.Load(testFS(), "data/cv.*.json", content.WithBasePath("/portfolio-mui/"))
		require.NoError(t, err)

		assert.Equal(t, []string{"en", "fr"}, library.Languages())
		assert.Equal(t, "/portfolio-mui/", library.BasePath())

		doc := library.Get("en")
		assert.Equal(t, "/portfolio-mui/images/profile.jpg", doc.Personal.ProfilePicture)
		assert.Equal(t, "https://jane.example.com", doc.Personal.Portfolio)
		assert.Equal(t, "/portfolio-mui/images/uni.png", doc.Education[0].InstitutionLogo)
		assert.Equal(t, []string{"/portfolio-mui/images/p1.png", "https://cdn.example.com/p1b.png"}, doc.Projects[0].Images)
		assert.Equal(t, "/portfolio-mui/images/acme-1.png", doc.Experience[0].Images[0])
		assert.Equal(t, "data:image/png;base64,AAAA", doc.Certifications[0].Image)
	})

	t.Run("keeps skill category order", func(t *testing.T) {
		library, err := content.Load(testFS(), "data/cv.*.json")
		require.NoError(t, err)

		skills := library.Get("en").Skills
		assert.Equal(t, []string{"languages", "cloud", "databases"}, skills.Keys())

		category, ok := skills.Category("languages")
		require.True(t, ok)
		assert.Equal(t, []string{"Go", "TypeScript"}, category.Items)
	})

	t.Run("unknown language falls back to default", func(t *testing.T) {
		library, err := content.Load(testFS(), "data/cv.*.json")
		require.NoError(t, err)

		assert.Same(t, library.Get("en"), library.Get("ar"))
		assert.False(t, library.Has("ar"))
		assert.Equal(t, "Un", library.Get("fr").Projects[0].Title)
	})

	t.Run("fails without default document", func(t *testing.T) {
		fsys := fstest.MapFS{"data/cv.fr.json": {Data: []byte(frDocument)}}
		_, err := content.Load(fsys, "data/cv.*.json")
		assert.ErrorIs(t, err, content.ErrMissingDefault)
	})

	t.Run("fails when nothing matches", func(t *testing.T) {
		_, err := content.Load(testFS(), "missing/*.json")
		assert.ErrorIs(t, err, content.ErrNoDocuments)
	})

	t.Run("fails on schema violation", func(t *testing.T) {
		fsys := fstest.MapFS{
			"data/cv.en.json": {Data: []byte(`{"personal": {"name": "Jane"}, "summary": 42}`)},
		}
		_, err := content.Load(fsys, "data/cv.*.json")
		require.Error(t, err)

		var validationErr *content.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.NotEmpty(t, validationErr.Errors)
		assert.Equal(t, "data/cv.en.json", validationErr.Source)
	})

	t.Run("fails on malformed json", func(t *testing.T) {
		fsys := fstest.MapFS{"data/cv.en.json": {Data: []byte(`{ invalid json }`)}}
		_, err := content.Load(fsys, "data/cv.*.json")
		assert.ErrorIs(t, err, content.ErrInvalidDocument)
	})

	t.Run("must load panics on error", func(t *testing.T) {
		assert.Panics(t, func() { content.MustLoad(fstest.MapFS{}, "data/*.json") })
	})
}

func TestLanguageFromFilename(t *testing.T) {
	assert.Equal(t, "fr", content.LanguageFromFilename("data/cv.fr.json"))
	assert.Equal(t, "en", content.LanguageFromFilename("cv.en.json"))
	assert.Equal(t, "", content.LanguageFromFilename("cv.json"))
}

func TestSkillsJSON(t *testing.T) {
	var skills content.Skills
	require.NoError(t, skills.UnmarshalJSON([]byte(`{"b": ["x"], "a": []}`)))
	assert.Equal(t, []string{"b", "a"}, skills.Keys())

	out, err := skills.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"b": ["x"], "a": []}`, string(out))

	assert.Error(t, skills.UnmarshalJSON([]byte(`["not", "an", "object"]`)))
}
