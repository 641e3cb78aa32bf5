package journal

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/middleware"
)

// RegisterRoutes sets up the journal routes on the authenticated group.
// The writing endpoints are rate-limited because each one fans out to the
// hosted emotion inference API.
func RegisterRoutes(authed *echo.Group, h *Handler) {
	authed.GET("/journal", h.List)
	authed.GET("/journal/mood", h.Mood)
	authed.POST("/journal", h.Create, middleware.RateLimit(20, time.Minute))
	authed.PUT("/journal/:id", h.Update, middleware.RateLimit(20, time.Minute))
}
