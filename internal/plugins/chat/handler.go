package chat

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/apperror"
	"github.com/mindbase/mindbase/internal/plugins/auth"
	"github.com/mindbase/mindbase/internal/sanitize"
)

// Handler handles HTTP requests for the companion chat.
type Handler struct {
	service ChatService
}

// NewHandler creates a new chat handler with the given service.
func NewHandler(service ChatService) *Handler {
	return &Handler{service: service}
}

// History returns the conversation so far (GET /api/chat).
func (h *Handler) History(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	msgs, err := h.service.History(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	if msgs == nil {
		msgs = []Message{}
	}
	return c.JSON(http.StatusOK, msgs)
}

// Send runs one chat exchange (POST /api/chat).
func (h *Handler) Send(c echo.Context) error {
	user := auth.GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	var req SendRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	text := sanitize.Text(req.Text)
	if text == "" {
		return apperror.NewValidation("message text must not be empty")
	}

	resp, err := h.service.Send(c.Request().Context(), user, text)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
