package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/dmitrymomot/portfolio/core/contact"
	"github.com/dmitrymomot/portfolio/core/logger"
)

// submitContact validates and forwards the contact form.
//
// htmx fragments always answer 200 so the swap happens; the outcome is in
// the rendered state. Plain posts re-render the page with a status code
// matching the outcome.
func (s *Site) submitContact(c *gin.Context) {
	_, prefs := s.requestState(c)
	ctx := c.Request.Context()

	var msg contact.Message
	if err := c.ShouldBindWith(&msg, binding.Form); err != nil {
		s.logger.DebugContext(ctx, "contact form could not be bound",
			logger.Component("web"),
			logger.Error(err))
	}

	form := contactView{
		Values: contactValues{
			Name:    msg.Name,
			Email:   msg.Email,
			Subject: msg.Subject,
			Message: msg.Message,
		},
	}
	t := s.baseView(prefs).T

	status := http.StatusOK
	_, err := s.contact.Submit(ctx, prefs.Locale(), msg)

	var invalid *contact.ValidationError
	switch {
	case err == nil:
		form.Success = true
		form.Values = contactValues{}
	case errors.As(err, &invalid):
		status = http.StatusUnprocessableEntity
		form.Invalid = make(map[string]string, len(invalid.Fields))
		for field, rule := range invalid.Fields {
			form.Invalid[field] = t.T("contact.invalid."+rule, t.T("contact.error"))
		}
	case errors.Is(err, contact.ErrRateLimited):
		status = http.StatusTooManyRequests
		form.Error = t.T("contact.rateLimited")
	default:
		status = http.StatusBadGateway
		form.Error = t.T("contact.error")
	}

	if isHTMX(c) {
		form.view = s.baseView(prefs)
		c.HTML(http.StatusOK, "contact", form)
		return
	}
	s.renderPage(c, status, form)
}
