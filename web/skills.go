package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/core/content"
)

// skills renders the category switcher with ?category= selected.
func (s *Site) skills(c *gin.Context) {
	_, prefs := s.requestState(c)
	doc := s.library.Get(prefs.Locale())
	c.HTML(http.StatusOK, "skills", skillsOf(doc, c.Query("category"), s.baseView(prefs)))
}

// skillsOf builds the switcher for the document's categories. A selection
// the locale does not have resets to the first category, so switching
// language never leaves an empty panel.
func skillsOf(doc *content.Document, selected string, base view) skillsView {
	if _, ok := doc.Skills.Category(selected); !ok && len(doc.Skills) > 0 {
		selected = doc.Skills[0].Key
	}

	v := skillsView{
		view:       base,
		Categories: make([]skillTab, 0, len(doc.Skills)),
	}
	for _, category := range doc.Skills {
		tab := skillTab{
			Key:    category.Key,
			Label:  base.T.T("portfolio.resume.categories."+category.Key, category.Key),
			Count:  base.T.Tn("portfolio.resume.skillsCount", len(category.Items)),
			Items:  category.Items,
			Active: category.Key == selected,
		}
		if tab.Active {
			v.Active = tab
		}
		v.Categories = append(v.Categories, tab)
	}
	return v
}
