package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/core/carousel"
	"github.com/dmitrymomot/portfolio/core/preference"
)

const maxPerPage = 12

func (s *Site) index(c *gin.Context) {
	s.renderPage(c, http.StatusOK, contactView{})
}

// renderPage renders the full document for the visitor's locale. The contact
// view carries the form state after a plain POST.
func (s *Site) renderPage(c *gin.Context, status int, form contactView) {
	visitor, prefs := s.requestState(c)
	state := prefs.State()
	doc := s.library.Get(state.Locale)
	base := s.baseView(prefs)

	v := pageView{
		view:      base,
		Lang:      state.Locale,
		Dir:       state.Direction(),
		Theme:     state.Theme(),
		Languages: s.translations.LanguageOptions(state.Locale),
		Doc:       doc,
		Year:      time.Now().Year(),
	}

	for _, section := range carouselSections {
		slides := section.slides(doc)
		nav, _ := s.gallery.Lookup(visitor, section.name, len(slides))
		cv := s.carouselView(section, nav, slides, base)
		switch section.name {
		case "projects":
			v.Projects = cv
		case "experience":
			v.Experience = cv
		}
	}

	page := carousel.Bounds(len(doc.Certifications), s.cfg.CertificationsPerPage, 0)
	if pager, ok := s.gallery.LookupPager(visitor, "certifications", len(doc.Certifications), s.cfg.CertificationsPerPage); ok {
		page = pager.Current()
	}
	v.Certifications = s.certificationsView(page, prefs, base)
	v.Skills = skillsOf(doc, c.Query("category"), base)

	form.view = base
	v.Contact = form

	c.HTML(status, "page", v)
}

// certifications moves the visitor's certification page by step and renders it.
// GET accepts ?page= (1-based) and ?per= to jump directly.
func (s *Site) certifications(step int) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitor, prefs := s.requestState(c)
		doc := s.library.Get(prefs.Locale())

		per := s.cfg.CertificationsPerPage
		if raw := c.DefaultQuery("per", c.PostForm("per")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			per = min(n, maxPerPage)
		}

		length := len(doc.Certifications)
		raw := c.Query("page")

		var page carousel.Page
		switch {
		case step > 0:
			page = s.gallery.Pager(visitor, "certifications", length, per).Next()
		case step < 0:
			page = s.gallery.Pager(visitor, "certifications", length, per).Prev()
		case raw != "":
			n, err := strconv.Atoi(raw)
			if err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			page = s.gallery.Pager(visitor, "certifications", length, per).Go(n - 1)
		default:
			page = carousel.Bounds(length, per, 0)
			if pager, ok := s.gallery.LookupPager(visitor, "certifications", length, per); ok {
				page = pager.Current()
			}
		}

		if step != 0 && !isHTMX(c) {
			s.backToPage(c, "certifications")
			return
		}

		c.HTML(http.StatusOK, "certifications", s.certificationsView(page, prefs, s.baseView(prefs)))
	}
}

func (s *Site) certificationsView(page carousel.Page, prefs *preference.Preferences, base view) certificationsView {
	doc := s.library.Get(prefs.Locale())
	items, clamped := carousel.PageOf(doc.Certifications, page.Size, page.Index)
	return certificationsView{
		view:  base,
		Items: items,
		Page:  clamped,
		Total: len(doc.Certifications),
	}
}
