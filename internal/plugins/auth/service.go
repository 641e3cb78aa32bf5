package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mindbase/mindbase/internal/apperror"
)

// SessionService defines the business logic contract for accounts and the
// session manager. Handlers call these methods -- they never touch the
// repository directly.
type SessionService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, input LoginInput) (*User, error)
	Logout(ctx context.Context) error
	// CurrentUser resolves the session pointer to a stored user. Returns
	// (nil, nil) when no session is active or the pointer dangles;
	// absence is not an error.
	CurrentUser(ctx context.Context) (*User, error)
	// UpdateUser replaces the stored user with the same id in place. No
	// email uniqueness re-check, no password policy; a silent no-op when
	// the id is unknown.
	UpdateUser(ctx context.Context, user User) error
}

// sessionService implements SessionService over the user repository.
type sessionService struct {
	repo UserRepository
}

// NewSessionService creates the session manager with the given repository.
func NewSessionService(repo UserRepository) SessionService {
	return &sessionService{repo: repo}
}

// Register creates a new account. Fails with EmailTaken when the exact
// email is already registered; otherwise allocates an id and join
// timestamp and appends the user. Registration does NOT log the user in.
func (s *sessionService) Register(ctx context.Context, input RegisterInput) (*User, error) {
	exists, err := s.repo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("checking email: %w", err))
	}
	if exists {
		return nil, apperror.NewEmailTaken()
	}

	user := &User{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		JoinedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating user: %w", err))
	}

	slog.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return user, nil
}

// Login authenticates by exact (email, password) match. On success it
// records the session pointer, stamps the user's last login, persists the
// updated user, and returns it. On no match it returns the single generic
// credentials error.
func (s *sessionService) Login(ctx context.Context, input LoginInput) (*User, error) {
	user, err := s.repo.FindByCredentials(ctx, input.Email, input.Password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 404 {
			return nil, apperror.NewInvalidCredentials()
		}
		return nil, apperror.NewInternal(fmt.Errorf("finding user: %w", err))
	}

	if err := s.repo.SetCurrentUserID(ctx, user.ID); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("recording session: %w", err))
	}

	user.LastLogin = time.Now().UTC().Format(time.RFC3339)
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("stamping last login: %w", err))
	}

	slog.Info("user logged in",
		slog.String("user_id", user.ID),
	)

	return user, nil
}

// Logout clears the session pointer. Idempotent: logging out twice, or
// with no active session, succeeds.
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.repo.ClearCurrentUserID(ctx); err != nil {
		return apperror.NewInternal(fmt.Errorf("clearing session: %w", err))
	}
	return nil
}

// CurrentUser resolves the session pointer to its user record. A pointer
// referencing an id no longer present resolves to no session rather than
// an error.
func (s *sessionService) CurrentUser(ctx context.Context) (*User, error) {
	id, found, err := s.repo.CurrentUserID(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("reading session: %w", err))
	}
	if !found {
		return nil, nil
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == 404 {
			// Dangling pointer (e.g. a partial restore replaced the user
			// list). Treated as logged out.
			return nil, nil
		}
		return nil, apperror.NewInternal(fmt.Errorf("resolving session user: %w", err))
	}
	return user, nil
}

// UpdateUser replaces the stored record matching user.ID.
func (s *sessionService) UpdateUser(ctx context.Context, user User) error {
	if err := s.repo.Update(ctx, &user); err != nil {
		return apperror.NewInternal(fmt.Errorf("updating user: %w", err))
	}
	return nil
}
