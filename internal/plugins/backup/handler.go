package backup

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/apperror"
)

// maxBackupSize bounds an uploaded backup document.
const maxBackupSize = 10 << 20

// Handler handles backup download and restore requests.
type Handler struct {
	codec Codec
}

// NewHandler creates a new backup handler with the given codec.
func NewHandler(codec Codec) *Handler {
	return &Handler{codec: codec}
}

// Download streams the current backup as a file attachment (GET /api/backup).
func (h *Handler) Download(c echo.Context) error {
	doc, err := h.codec.Create(c.Request().Context())
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("mindbase-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, doc)
}

// Restore merges an uploaded backup into the store (POST /api/backup).
func (h *Handler) Restore(c echo.Context) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBackupSize))
	if err != nil {
		return apperror.NewBadRequest("could not read request body")
	}
	if len(body) == 0 {
		return apperror.NewInvalidBackup("backup file is empty")
	}

	if err := h.codec.Restore(c.Request().Context(), body); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "restored"})
}
