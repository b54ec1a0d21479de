package repository

import (
	"context"
	"time"

	"lifelog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when trying to register an email that
	// already has an account.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindUserByEmail retrieves a user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateLastActive stamps the user's last-active timestamp. Called by the
	// app's foreground/login flow; the scanner only ever reads this field.
	UpdateLastActive(ctx context.Context, id uuid.UUID, at time.Time) error

	// UpdateFCMToken replaces the user's push token. An empty token
	// unregisters the device.
	UpdateFCMToken(ctx context.Context, id uuid.UUID, token string) error
}
