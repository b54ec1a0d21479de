package impl

import (
	"context"
	"log/slog"
	"time"

	"lifelog/internal/domain/entity"
	domainerrors "lifelog/internal/domain/errors"
	"lifelog/internal/domain/repository"
	"lifelog/internal/domain/service"
	"lifelog/internal/errors"
	"lifelog/internal/usecase"

	"github.com/google/uuid"
)

type letterService struct {
	logger     *slog.Logger
	letterRepo repository.LetterRepository
	userRepo   repository.UserRepository
	publisher  service.EventPublisher
}

// NewLetterService creates the letter authoring/retrieval use case used by
// the HTTP API.
func NewLetterService(
	logger *slog.Logger,
	letterRepo repository.LetterRepository,
	userRepo repository.UserRepository,
	publisher service.EventPublisher,
) usecase.LetterUsecase {
	return &letterService{
		logger:     logger,
		letterRepo: letterRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

// CreateLetter stores a new pending letter after checking the recipient
// exists, then publishes a letter.created event for async consumers.
func (s *letterService) CreateLetter(ctx context.Context, senderID uuid.UUID, input *usecase.CreateLetterInput) (*entity.Letter, error) {
	recipientID, err := uuid.Parse(input.RecipientID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient_id must be a valid UUID")
	}

	if _, err := s.userRepo.FindUserByID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrRecipientNotFound
		}

		return nil, errors.Wrap(err, "failed to check recipient")
	}

	now := time.Now()
	letter := &entity.Letter{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Title:       input.Title,
		Body:        input.Body,
		Status:      entity.LetterStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.letterRepo.CreateLetter(ctx, letter); err != nil {
		return nil, errors.Wrap(err, "failed to create letter")
	}

	event := &service.LetterEvent{
		Type:        service.LetterEventCreated,
		LetterID:    letter.ID.String(),
		SenderID:    letter.SenderID.String(),
		RecipientID: letter.RecipientID.String(),
		OccurredAt:  now.UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishLetterEvent(ctx, event); err != nil {
		// The letter is safely stored; losing the event only costs the
		// async hook a trigger.
		s.logger.Warn("[Letter] Failed to publish letter.created event",
			slog.String("letter_id", letter.ID.String()),
			slog.Any("error", err),
		)
	}

	return letter, nil
}

// GetLetter retrieves one letter, enforcing that only the sender may read a
// pending letter and the recipient may read it once delivered.
func (s *letterService) GetLetter(ctx context.Context, requesterID, letterID uuid.UUID) (*entity.Letter, error) {
	letter, err := s.letterRepo.FindLetterByID(ctx, letterID)
	if err != nil {
		if errors.Is(err, repository.ErrLetterNotFound) {
			return nil, domainerrors.ErrLetterNotFound
		}

		return nil, errors.Wrap(err, "failed to find letter")
	}

	if requesterID == letter.SenderID {
		return letter, nil
	}
	if requesterID == letter.RecipientID && letter.IsDelivered() {
		return letter, nil
	}

	return nil, domainerrors.ErrLetterOwnershipViolation
}

// ListLettersBySender retrieves all letters the user has authored.
func (s *letterService) ListLettersBySender(ctx context.Context, senderID uuid.UUID) ([]*entity.Letter, error) {
	letters, err := s.letterRepo.FindLettersBySender(ctx, senderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list letters")
	}

	return letters, nil
}
