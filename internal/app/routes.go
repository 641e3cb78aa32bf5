package app

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindbase/mindbase/internal/ai"
	"github.com/mindbase/mindbase/internal/plugins/auth"
	"github.com/mindbase/mindbase/internal/plugins/backup"
	"github.com/mindbase/mindbase/internal/plugins/chat"
	"github.com/mindbase/mindbase/internal/plugins/journal"
	"github.com/mindbase/mindbase/internal/plugins/screening"
	"github.com/mindbase/mindbase/internal/plugins/wellness"
	"github.com/mindbase/mindbase/internal/store"
)

// RegisterRoutes builds the full dependency graph and sets up all
// application routes. Each plugin registers its own routes; this is the
// single place where they are aggregated.
func (a *App) RegisterRoutes() {
	e := a.Echo

	recordStore := store.NewRedisStore(a.Redis, a.Config.Store.KeyPrefix)
	completer := ai.NewCompleter(a.Config.AI)
	labeler := ai.NewLabeler(a.Config.AI)

	userRepo := auth.NewUserRepository(recordStore)
	sessionService := auth.NewSessionService(userRepo)

	// --- Public Routes (no auth required) ---

	// Health check endpoint for container health monitoring.
	e.GET("/healthz", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded", "store": err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Crisis contacts and exercises stay reachable without a session.
	wellness.RegisterRoutes(e, wellness.NewHandler())

	// Authenticated route group -- all routes below require a valid session.
	authed := e.Group("/api", auth.RequireSession(sessionService))

	auth.RegisterRoutes(e, authed, auth.NewHandler(sessionService))

	chatService := chat.NewChatService(chat.NewMessageRepository(recordStore), completer)
	chat.RegisterRoutes(authed, chat.NewHandler(chatService))

	journalService := journal.NewJournalService(journal.NewEntryRepository(recordStore), labeler)
	journal.RegisterRoutes(authed, journal.NewHandler(journalService))

	screeningService := screening.NewScreeningService(screening.NewResultRepository(recordStore))
	screening.RegisterRoutes(authed, screening.NewHandler(screeningService))

	backup.RegisterRoutes(authed, backup.NewHandler(backup.NewCodec(recordStore)))
}
