package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/core/carousel"
	"github.com/dmitrymomot/portfolio/core/content"
	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/core/logger"
)

type carouselAction int

const (
	actionShow carouselAction = iota
	actionNext
	actionPrev
	actionJump
	actionImage
	actionPlay
	actionPause
)

func (a carouselAction) String() string {
	switch a {
	case actionNext:
		return "next"
	case actionPrev:
		return "prev"
	case actionJump:
		return "jump"
	case actionImage:
		return "image"
	case actionPlay:
		return "play"
	case actionPause:
		return "pause"
	default:
		return "show"
	}
}

// carouselSection maps one document list to a carousel.
type carouselSection struct {
	name   string
	prefix string
	slides func(doc *content.Document) []slideView
}

var carouselSections = []carouselSection{
	{name: "projects", prefix: "portfolio.projects", slides: projectSlides},
	{name: "experience", prefix: "portfolio.experience", slides: experienceSlides},
}

func projectSlides(doc *content.Document) []slideView {
	out := make([]slideView, len(doc.Projects))
	for i, p := range doc.Projects {
		out[i] = slideView{
			Index:        i,
			Title:        p.Title,
			Period:       p.Period,
			Duration:     p.Duration,
			Description:  p.Description,
			Technologies: p.Technologies,
			Images:       p.Images,
			Link:         p.ProjectLink,
			Source:       p.GitHubLink,
		}
	}
	return out
}

func experienceSlides(doc *content.Document) []slideView {
	out := make([]slideView, len(doc.Experience))
	for i, e := range doc.Experience {
		out[i] = slideView{
			Index:        i,
			Title:        e.Position,
			Subtitle:     e.Company,
			Logo:         e.CompanyLogo,
			Period:       e.Period,
			Duration:     e.Duration,
			Location:     e.Location,
			Description:  e.Description,
			Technologies: e.Technologies,
			Achievements: e.Achievements,
			Images:       e.Images,
			Link:         e.Website,
		}
	}
	return out
}

// subKey is the image cursor key of a slide.
func subKey(index int) string {
	return strconv.Itoa(index)
}

// carousel handles one action on a section's navigator and renders the result.
func (s *Site) carousel(section carouselSection, action carouselAction) gin.HandlerFunc {
	return func(c *gin.Context) {
		visitor, prefs := s.requestState(c)
		doc := s.library.Get(prefs.Locale())
		slides := section.slides(doc)

		var nav *carousel.Navigator
		if action == actionShow {
			nav, _ = s.gallery.Lookup(visitor, section.name, len(slides))
		} else {
			nav = s.gallery.View(visitor, section.name, len(slides))
		}

		switch action {
		case actionNext:
			nav.Next()
		case actionPrev:
			nav.Prev()
		case actionJump:
			index, err := strconv.Atoi(c.Param("index"))
			if err != nil {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			nav.Pause()
			nav.JumpTo(index)
		case actionImage:
			item, err1 := strconv.Atoi(c.Param("item"))
			delta, err2 := strconv.Atoi(c.Param("delta"))
			if err1 != nil || err2 != nil || item < 0 || item >= len(slides) {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			nav.AdvanceSub(subKey(item), delta, len(slides[item].Images))
		case actionPlay:
			nav.Play(s.cfg.AutoPlayInterval)
		case actionPause:
			nav.Pause()
		}

		if action != actionShow {
			s.logger.DebugContext(c.Request.Context(), "carousel action",
				logger.Component("web"),
				logger.View(section.name),
				logger.Action(action.String()),
				logger.Visitor(visitor))
		}

		if action != actionShow && !isHTMX(c) {
			s.backToPage(c, section.name)
			return
		}

		v := s.carouselView(section, nav, slides, s.baseView(prefs))
		c.HTML(http.StatusOK, "carousel", v)
	}
}

// carouselView renders a section. A nil nav is a visitor who has not
// navigated yet and sees the first slide.
func (s *Site) carouselView(section carouselSection, nav *carousel.Navigator, slides []slideView, base view) carouselView {
	state := carousel.State{Length: len(slides)}
	if nav != nil {
		state = nav.State()
		for i := range slides {
			slides[i].ImageIndex = nav.Sub(subKey(i), len(slides[i].Images))
		}
	}

	v := carouselView{
		view:      base,
		Section:   section.name,
		Title:     base.T.T(section.prefix + ".title"),
		Subtitle:  base.T.T(section.prefix + ".subtitle"),
		Count:     base.T.Tn(section.prefix+".count", len(slides)),
		Next:      base.T.T(section.prefix + ".next"),
		Prev:      base.T.T(section.prefix + ".prev"),
		PlayLabel: base.T.Tn("portfolio.carousel.autoplay", intervalSeconds(s.cfg.AutoPlayInterval)),
		State:     state,
		Slides:    slides,
		Interval:  s.cfg.AutoPlayInterval,
	}
	if !state.Empty() && state.Index < len(slides) {
		v.Current = slides[state.Index]
	}
	return v
}

// carouselPosition renders "2 of 3" in the visitor's language.
func carouselPosition(t *i18n.Translator, state carousel.State) string {
	if state.Empty() {
		return ""
	}
	return t.Tp("portfolio.position", i18n.M{
		"index": t.Number(state.Index + 1),
		"total": t.Number(state.Length),
	}, "%{index} of %{total}")
}

// Position is the human-readable cursor of the carousel.
func (v carouselView) Position() string {
	return carouselPosition(v.T, v.State)
}
