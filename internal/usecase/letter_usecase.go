// Package usecase defines the application use case interfaces and their
// input/output DTOs.
package usecase

import (
	"context"

	"lifelog/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLetterInput carries the request payload for authoring a letter.
type CreateLetterInput struct {
	RecipientID string `json:"recipient_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,max=120"`
	Body        string `json:"body" validate:"required,max=20000"`
}

// LetterUsecase defines the interface for letter authoring and retrieval.
type LetterUsecase interface {
	// CreateLetter stores a new letter in pending state and publishes a
	// letter.created event.
	CreateLetter(ctx context.Context, senderID uuid.UUID, input *CreateLetterInput) (*entity.Letter, error)

	// GetLetter retrieves a single letter. Only the sender, or the
	// recipient of an already-delivered letter, may read it.
	GetLetter(ctx context.Context, requesterID, letterID uuid.UUID) (*entity.Letter, error)

	// ListLettersBySender retrieves all letters the user has authored.
	ListLettersBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.Letter, error)
}
