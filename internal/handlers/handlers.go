// Package handlers contains the route controllers: the public site and the
// admin area. Pages are server-rendered html/template files; one-shot flash
// notices ride a short-lived cookie across redirects.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"craftfolio/internal/logger"
	"craftfolio/internal/middleware"
)

// Flash is a one-shot notice shown on the next rendered page.
// Category matches the original styling hooks: success, warning, danger.
type Flash struct {
	Category string
	Message  string
}

const (
	flashCookie     = "flash"
	flashPendingKey = "pendingFlashes"
)

// addFlash queues a notice for the next rendered page. Multiple notices in
// one request accumulate.
func addFlash(c *gin.Context, category, message string) {
	flashes := pendingFlashes(c)
	flashes = append(flashes, Flash{Category: category, Message: message})
	c.Set(flashPendingKey, flashes)
	c.SetCookie(flashCookie, encodeFlashes(flashes), 300, "/", "", false, true)
}

func pendingFlashes(c *gin.Context) []Flash {
	if v, exists := c.Get(flashPendingKey); exists {
		if flashes, ok := v.([]Flash); ok {
			return flashes
		}
	}
	return nil
}

// takeFlashes consumes the notices queued by the previous request.
func takeFlashes(c *gin.Context) []Flash {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return decodeFlashes(raw)
}

func encodeFlashes(flashes []Flash) string {
	parts := make([]string, 0, len(flashes))
	for _, f := range flashes {
		parts = append(parts, f.Category+"|"+f.Message)
	}
	return strings.Join(parts, "\n")
}

func decodeFlashes(raw string) []Flash {
	var flashes []Flash
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		category, message, found := strings.Cut(line, "|")
		if !found {
			message = category
			category = "success"
		}
		flashes = append(flashes, Flash{Category: category, Message: message})
	}
	return flashes
}

// render draws a template with the current user and any pending flash
// notices injected. Handlers may preset "Flashes" for same-request
// messages.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = middleware.GetCurrentUser(c)
	if _, ok := data["Flashes"]; !ok {
		if flashes := takeFlashes(c); flashes != nil {
			data["Flashes"] = flashes
		}
	}
	c.HTML(status, name, data)
}

// NotFound renders the 404 page. Registered as the NoRoute fallback and
// used by handlers when a record id does not resolve.
func NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", nil)
}

func serverError(c *gin.Context, err error) {
	logger.WithError(err).Error("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.String(http.StatusInternalServerError, "Internal Server Error")
	c.Abort()
}
