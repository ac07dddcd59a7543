package web

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dmitrymomot/portfolio/core/carousel"
	"github.com/dmitrymomot/portfolio/core/content"
	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/core/preference"
)

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"seq": func(n int) []int {
		out := make([]int, max(n, 0))
		for i := range out {
			out[i] = i
		}
		return out
	},
	"dict": func(kv ...any) (i18n.M, error) {
		if len(kv)%2 != 0 {
			return nil, fmt.Errorf("dict: odd number of arguments")
		}
		m := make(i18n.M, len(kv)/2)
		for i := 0; i < len(kv); i += 2 {
			key, ok := kv[i].(string)
			if !ok {
				return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
			}
			m[key] = kv[i+1]
		}
		return m, nil
	},
	"join": strings.Join,
	"seconds": func(d time.Duration) string {
		return fmt.Sprintf("%ds", intervalSeconds(d))
	},
}

// intervalSeconds is d in whole seconds, at least one.
func intervalSeconds(d time.Duration) int {
	return max(int(d.Seconds()), 1)
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplate, err)
	}
	return tmpl, nil
}

// view is shared by every template: links are built from Base and text comes from T.
type view struct {
	Base string
	T    *i18n.Translator
}

type pageView struct {
	view
	Lang      string
	Dir       string
	Theme     string
	Languages []i18n.LanguageOption
	Doc       *content.Document
	Year      int

	Projects       carouselView
	Experience     carouselView
	Certifications certificationsView
	Skills         skillsView
	Contact        contactView
}

type carouselView struct {
	view
	Section   string
	Title     string
	Subtitle  string
	Count     string
	Next      string
	Prev      string
	PlayLabel string
	State     carousel.State
	Slides    []slideView
	Current   slideView
	Interval  time.Duration
}

type slideView struct {
	Index        int
	Title        string
	Subtitle     string
	Logo         string
	Period       string
	Duration     string
	Location     string
	Description  string
	Technologies []string
	Achievements []string
	Images       []string
	ImageIndex   int
	Link         string
	Source       string
}

// Image returns the image under the slide's image cursor.
func (v slideView) Image() string {
	if len(v.Images) == 0 {
		return ""
	}
	return v.Images[v.ImageIndex]
}

type certificationsView struct {
	view
	Items []content.Certification
	Page  carousel.Page
	Total int
}

type skillsView struct {
	view
	Categories []skillTab
	Active     skillTab
}

// skillTab is one category of the skills switcher.
type skillTab struct {
	Key    string
	Label  string
	Count  string
	Items  []string
	Active bool
}

type contactView struct {
	view
	Values  contactValues
	Invalid map[string]string
	Success bool
	Error   string
}

type contactValues struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (s *Site) baseView(prefs *preference.Preferences) view {
	return view{
		Base: s.base,
		T:    i18n.NewTranslator(s.translations, prefs.Locale()),
	}
}
