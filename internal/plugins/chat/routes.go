package chat

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/middleware"
)

// RegisterRoutes sets up the chat routes on the authenticated group. Send
// is rate-limited because each call fans out to the hosted completion API.
func RegisterRoutes(authed *echo.Group, h *Handler) {
	authed.GET("/chat", h.History)
	authed.POST("/chat", h.Send, middleware.RateLimit(20, time.Minute))
}
