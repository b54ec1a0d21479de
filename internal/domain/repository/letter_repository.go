// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"lifelog/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for letter persistence.
var (
	// ErrLetterNotFound is returned when a letter is not found.
	ErrLetterNotFound = errors.New("letter not found")
	// ErrLetterAlreadyDelivered is returned when a delivery transition is
	// attempted on a letter that is no longer pending.
	ErrLetterAlreadyDelivered = errors.New("letter already delivered")
)

// LetterRepository defines the interface for letter-related database operations.
type LetterRepository interface {
	// CreateLetter persists a new letter in pending state.
	CreateLetter(ctx context.Context, letter *entity.Letter) error

	// FindLetterByID retrieves a letter by its unique ID.
	FindLetterByID(ctx context.Context, id uuid.UUID) (*entity.Letter, error)

	// FindLettersBySender retrieves all letters authored by a user, newest first.
	FindLettersBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.Letter, error)

	// FindPendingLetters retrieves every letter still in pending state for
	// the inactivity scan to iterate.
	FindPendingLetters(ctx context.Context) ([]*entity.Letter, error)

	// MarkDelivered transitions a letter to delivered and stamps deliveredAt,
	// conditionally on the letter still being pending. The update is a single
	// atomic statement so that overlapping scans cannot both apply it.
	// Returns ErrLetterAlreadyDelivered if the letter was delivered by a
	// concurrent transition, ErrLetterNotFound if no such letter exists.
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) error

	// MarkWarned stamps lastWarnedAt on a letter after a delivery warning
	// has been dispatched to its sender.
	MarkWarned(ctx context.Context, id uuid.UUID, warnedAt time.Time) error
}
