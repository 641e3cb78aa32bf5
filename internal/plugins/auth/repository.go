package auth

import (
	"context"
	"fmt"

	"github.com/mindbase/mindbase/internal/apperror"
	"github.com/mindbase/mindbase/internal/store"
)

// UserRepository defines the data access contract for users and the
// current-session pointer. All record store access lives in the concrete
// implementation -- no key names leak out.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	// FindByCredentials looks up a user by an exact (email, password)
	// pair. It deliberately cannot distinguish an unknown email from a
	// wrong password.
	FindByCredentials(ctx context.Context, email, password string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// Update replaces the stored user with the same id in place. A silent
	// no-op when the id is not found.
	Update(ctx context.Context, user *User) error

	// Session pointer.
	CurrentUserID(ctx context.Context) (string, bool, error)
	SetCurrentUserID(ctx context.Context, id string) error
	ClearCurrentUserID(ctx context.Context) error
}

// userRepository implements UserRepository on the record store. The user
// list is one JSON value; every operation reads the whole list, mutates a
// copy, and writes it back.
type userRepository struct {
	store store.Store
}

// NewUserRepository creates a user repository over the given record store.
func NewUserRepository(s store.Store) UserRepository {
	return &userRepository{store: s}
}

// list loads all users, treating an absent or malformed key as empty.
func (r *userRepository) list(ctx context.Context) ([]User, error) {
	var users []User
	if _, err := r.store.Read(ctx, store.KeyUsers, &users); err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	return users, nil
}

// Create appends the user to the stored list.
func (r *userRepository) Create(ctx context.Context, user *User) error {
	users, err := r.list(ctx)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return r.store.Write(ctx, store.KeyUsers, users)
}

// FindByID retrieves a user by id. Returns apperror.NotFound if no user
// exists with this id.
func (r *userRepository) FindByID(ctx context.Context, id string) (*User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

// FindByCredentials scans for an exact email and password match.
// Case-sensitive on both fields. Returns apperror.NotFound on no match.
func (r *userRepository) FindByCredentials(ctx context.Context, email, password string) (*User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			u := users[i]
			return &u, nil
		}
	}
	return nil, apperror.NewNotFound("user not found")
}

// EmailExists reports whether any user already has this exact email.
// Checked at registration only; profile edits don't re-validate.
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	users, err := r.list(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Update replaces the user with a matching id in place. Ids not present in
// the list are ignored without error.
func (r *userRepository) Update(ctx context.Context, user *User) error {
	users, err := r.list(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = *user
			return r.store.Write(ctx, store.KeyUsers, users)
		}
	}
	return nil
}

// CurrentUserID reads the session pointer. Absent pointer means no session.
func (r *userRepository) CurrentUserID(ctx context.Context) (string, bool, error) {
	var id string
	found, err := r.store.Read(ctx, store.KeyCurrentUser, &id)
	if err != nil {
		return "", false, fmt.Errorf("loading session pointer: %w", err)
	}
	return id, found && id != "", nil
}

// SetCurrentUserID records the session pointer.
func (r *userRepository) SetCurrentUserID(ctx context.Context, id string) error {
	return r.store.Write(ctx, store.KeyCurrentUser, id)
}

// ClearCurrentUserID removes the session pointer. Idempotent.
func (r *userRepository) ClearCurrentUserID(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyCurrentUser)
}
