package wellness

import "github.com/labstack/echo/v4"

// RegisterRoutes sets up the wellness routes. Both endpoints are public:
// crisis contact information must never sit behind a login.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/api/wellness/exercises", h.Exercises)
	e.GET("/api/wellness/resources", h.Resources)
}
