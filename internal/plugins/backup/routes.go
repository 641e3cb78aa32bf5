package backup

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/middleware"
)

// RegisterRoutes sets up the backup routes on the authenticated group.
// Restore rewrites the whole store, so it gets the tightest rate limit.
func RegisterRoutes(authed *echo.Group, h *Handler) {
	authed.GET("/backup", h.Download)
	authed.POST("/backup", h.Restore, middleware.RateLimit(3, time.Minute))
}
