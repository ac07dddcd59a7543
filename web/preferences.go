package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// setLocale switches the visitor's language. Unsupported codes are ignored.
// The whole page changes language, so htmx is told to reload it.
func (s *Site) setLocale(c *gin.Context) {
	_, prefs := s.requestState(c)
	prefs.SetLocale(c.Request.Context(), c.PostForm("locale"))

	if isHTMX(c) {
		c.Header("HX-Redirect", s.base)
		c.Status(http.StatusNoContent)
		return
	}
	s.backToPage(c, "")
}

// setTheme sets the theme from the "dark" form value, or toggles it when the
// value is missing. htmx requests receive the new toggle and an X-Theme
// header the page script applies to the document.
func (s *Site) setTheme(c *gin.Context) {
	_, prefs := s.requestState(c)
	ctx := c.Request.Context()

	if raw, ok := c.GetPostForm("dark"); ok {
		dark, err := strconv.ParseBool(raw)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		prefs.SetDark(ctx, dark)
	} else {
		prefs.ToggleDark(ctx)
	}

	if !isHTMX(c) {
		s.backToPage(c, "")
		return
	}

	state := prefs.State()
	c.Header("X-Theme", state.Theme())
	c.HTML(http.StatusOK, "theme-toggle", themeView{
		view:  s.baseView(prefs),
		Theme: state.Theme(),
	})
}

type themeView struct {
	view
	Theme string
}

// ThemeToggle is the toggle rendered in the page header.
func (v pageView) ThemeToggle() themeView {
	return themeView{view: v.view, Theme: v.Theme}
}
