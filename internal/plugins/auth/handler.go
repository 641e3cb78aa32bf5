package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/apperror"
	"github.com/mindbase/mindbase/internal/sanitize"
)

// Handler handles HTTP requests for accounts and sessions. Handlers are
// thin: they bind the request, call the service, and encode the response.
// No business logic lives here.
type Handler struct {
	service SessionService
}

// NewHandler creates a new auth handler with the given service.
func NewHandler(service SessionService) *Handler {
	return &Handler{service: service}
}

// Register creates an account (POST /api/auth/register).
func (h *Handler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	if msg := validateRegisterRequest(&req); msg != "" {
		return apperror.NewValidation(msg)
	}

	user, err := h.service.Register(c.Request().Context(), RegisterInput{
		Name:     sanitize.Text(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, user.Redacted())
}

// Login starts a session (POST /api/auth/login).
func (h *Handler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	user, err := h.service.Login(c.Request().Context(), LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user.Redacted())
}

// Logout ends the session (POST /api/auth/logout). Succeeds even when no
// session is active.
func (h *Handler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current user (GET /api/me). Session required.
func (h *Handler) Me(c echo.Context) error {
	user := GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}
	return c.JSON(http.StatusOK, user.Redacted())
}

// UpdateMe edits the current user's name and bio (PUT /api/me). Email
// stays fixed; there is no uniqueness re-check on profile edits.
func (h *Handler) UpdateMe(c echo.Context) error {
	user := GetUser(c)
	if user == nil {
		return apperror.NewUnauthorized("no active session")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperror.NewBadRequest("invalid request")
	}

	name := sanitize.Text(req.Name)
	if name == "" {
		return apperror.NewValidation("name must not be empty")
	}

	updated := *user
	updated.Name = name
	updated.Bio = sanitize.Text(req.Bio)

	if err := h.service.UpdateUser(c.Request().Context(), updated); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated.Redacted())
}

// validateRegisterRequest returns an error message for invalid input, or
// an empty string when the request is acceptable.
func validateRegisterRequest(req *RegisterRequest) string {
	if strings.TrimSpace(req.Name) == "" {
		return "name is required"
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return "email is required"
	}
	if !strings.Contains(email, "@") {
		return "email is not valid"
	}
	if req.Password == "" {
		return "password is required"
	}
	return ""
}
