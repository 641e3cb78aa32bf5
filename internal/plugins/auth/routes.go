package auth

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/middleware"
)

// RegisterRoutes sets up all auth routes. The credential endpoints are
// public and rate-limited against brute-force attempts; the profile
// endpoints live on the authenticated group.
func RegisterRoutes(e *echo.Echo, authed *echo.Group, h *Handler) {
	e.POST("/api/auth/register", h.Register, middleware.RateLimit(5, time.Minute))
	e.POST("/api/auth/login", h.Login, middleware.RateLimit(10, time.Minute))
	e.POST("/api/auth/logout", h.Logout)

	authed.GET("/me", h.Me)
	authed.PUT("/me", h.UpdateMe)
}
