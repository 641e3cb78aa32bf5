package screening

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/middleware"
)

// RegisterRoutes sets up the screening routes on the authenticated group.
func RegisterRoutes(authed *echo.Group, h *Handler) {
	authed.GET("/screening/questions", h.Questions)
	authed.GET("/screening/results", h.Results)
	authed.POST("/screening", h.Submit, middleware.RateLimit(10, time.Minute))
}
