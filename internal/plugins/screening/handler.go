package screening

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/apperror"
	"github.com/mindbase/mindbase/internal/plugins/auth"
)

// Handler handles HTTP requests for the anxiety screening questionnaire.
type Handler struct {
	service ScreeningService
}

// NewHandler creates a new screening handler with the given service.
func NewHandler(service ScreeningService) *Handler {
	return &Handler{service: service}
}

// Questions returns the questionnaire (GET /api/screening/questions).
func (h *Handler) Questions(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Questions())
}

// Submit scores a completed questionnaire (POST /api/screening).
func (h *Handler) Submit(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	var req SubmitRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	result, err := h.service.Submit(c.Request().Context(), user.ID, req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

// Results lists past results (GET /api/screening/results).
func (h *Handler) Results(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	results, err := h.service.Results(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if results == nil {
		results = []Result{}
	}
	return c.JSON(http.StatusOK, results)
}
