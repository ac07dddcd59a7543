package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrymomot/portfolio/pkg/qrcode"
)

// qr renders a PNG QR code pointing at the portfolio. The target is the
// personal.portfolio link of the document, else this site's own URL.
func (s *Site) qr(c *gin.Context) {
	_, prefs := s.requestState(c)

	target := s.library.Get(prefs.Locale()).Personal.Portfolio
	if target == "" {
		target = s.siteURL(c)
	}

	size := qrcode.DefaultSize
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		size = n
	}

	png, err := qrcode.Generate(target, size)
	switch {
	case errors.Is(err, qrcode.ErrInvalidSize):
		c.AbortWithStatus(http.StatusBadRequest)
		return
	case err != nil:
		_ = c.Error(err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/png", png)
}

// siteURL rebuilds the absolute URL of the site root from the request.
func (s *Site) siteURL(c *gin.Context) string {
	if s.base != s.routeBase {
		return s.base
	}
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + s.base
}
