package wellness

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler serves the static wellness catalog.
type Handler struct{}

// NewHandler creates a new wellness handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Exercises returns the mindfulness exercises (GET /api/wellness/exercises).
func (h *Handler) Exercises(c echo.Context) error {
	return c.JSON(http.StatusOK, Exercises())
}

// Resources returns the crisis contacts (GET /api/wellness/resources).
func (h *Handler) Resources(c echo.Context) error {
	return c.JSON(http.StatusOK, Resources())
}
