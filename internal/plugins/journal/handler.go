package journal

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/apperror"
	"github.com/mindbase/mindbase/internal/plugins/auth"
	"github.com/mindbase/mindbase/internal/sanitize"
)

// Handler handles HTTP requests for the mood journal.
type Handler struct {
	service JournalService
}

// NewHandler creates a new journal handler with the given service.
func NewHandler(service JournalService) *Handler {
	return &Handler{service: service}
}

// List returns the user's entries, newest first (GET /api/journal).
func (h *Handler) List(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	entries, err := h.service.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []Entry{}
	}
	return c.JSON(http.StatusOK, entries)
}

// Create stores a new analyzed entry (POST /api/journal).
func (h *Handler) Create(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	title, content, err := bindSaveRequest(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Create(c.Request().Context(), user.ID, title, content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Update re-analyzes and replaces an entry in place (PUT /api/journal/:id).
func (h *Handler) Update(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	title, content, err := bindSaveRequest(c)
	if err != nil {
		return err
	}

	entry, err := h.service.Update(c.Request().Context(), user.ID, c.Param("id"), title, content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Mood returns the collective mood (GET /api/journal/mood).
func (h *Handler) Mood(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	mood, err := h.service.Mood(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, MoodResponse{Mood: mood})
}

// bindSaveRequest binds and sanitizes the shared create/update body.
func bindSaveRequest(c echo.Context) (title, content string, err error) {
	var req SaveRequest
	if err := c.Bind(&req); err != nil {
		return "", "", apperror.NewBadRequest("invalid request")
	}

	title = sanitize.Text(req.Title)
	content = sanitize.Text(req.Content)
	if title == "" {
		return "", "", apperror.NewValidation("title must not be empty")
	}
	if content == "" {
		return "", "", apperror.NewValidation("content must not be empty")
	}
	return title, content, nil
}
