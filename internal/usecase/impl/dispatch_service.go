package impl

import (
	"context"
	"log/slog"
	"time"

	"lifelog/internal/domain/entity"
	"lifelog/internal/domain/repository"
	"lifelog/internal/domain/service"
	"lifelog/internal/errors"
	"lifelog/internal/usecase"
)

type dispatchService struct {
	logger     *slog.Logger
	letterRepo repository.LetterRepository
	gateway    usecase.PushGateway
	publisher  service.EventPublisher
}

// NewDispatchService creates the dispatcher that applies delivery
// transitions and impending-delivery warnings to classified letters.
func NewDispatchService(
	logger *slog.Logger,
	letterRepo repository.LetterRepository,
	gateway usecase.PushGateway,
	publisher service.EventPublisher,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:     logger,
		letterRepo: letterRepo,
		gateway:    gateway,
		publisher:  publisher,
	}
}

// DeliverLetter transitions the letter to delivered and notifies the
// recipient. The conditional status write is sequenced strictly before the
// push: a crash or push failure after the write costs at most one
// notification, never a delivery.
func (s *dispatchService) DeliverLetter(ctx context.Context, letter *entity.Letter) error {
	now := time.Now()

	if err := s.letterRepo.MarkDelivered(ctx, letter.ID, now); err != nil {
		if errors.Is(err, repository.ErrLetterAlreadyDelivered) {
			// A concurrent scan won the transition; it also owns the
			// notification, so there is nothing left to do here.
			s.logger.Info("[Dispatch] Letter already delivered by a concurrent run",
				slog.String("letter_id", letter.ID.String()),
			)

			return nil
		}

		return errors.Wrap(err, "failed to mark letter delivered")
	}

	letter.Status = entity.LetterStatusDelivered
	letter.DeliveredAt = &now

	s.logger.Info("[Dispatch] Letter delivered",
		slog.String("letter_id", letter.ID.String()),
		slog.String("recipient_id", letter.RecipientID.String()),
	)

	s.publishEvent(ctx, letter, service.LetterEventDelivered, now)

	// Best-effort: the gateway logs its own failures with the offending ids.
	//nolint:errcheck
	_ = s.gateway.NotifyDelivered(ctx, letter)

	return nil
}

// WarnLetter notifies the sender and stamps lastWarnedAt so the next scans
// within the warn interval skip this letter.
func (s *dispatchService) WarnLetter(ctx context.Context, letter *entity.Letter, daysRemaining int) error {
	if err := s.gateway.NotifyWarning(ctx, letter, daysRemaining); err != nil {
		// The warning never reached the transport; leave lastWarnedAt
		// untouched so the next scan tries again.
		return errors.Wrap(err, "failed to send delivery warning")
	}

	now := time.Now()
	if err := s.letterRepo.MarkWarned(ctx, letter.ID, now); err != nil {
		// Non-fatal: the worst case is a repeated warning on the next scan.
		s.logger.Warn("[Dispatch] Failed to stamp lastWarnedAt",
			slog.String("letter_id", letter.ID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	letter.LastWarnedAt = &now

	s.logger.Info("[Dispatch] Delivery warning sent",
		slog.String("letter_id", letter.ID.String()),
		slog.String("sender_id", letter.SenderID.String()),
		slog.Int("days_remaining", daysRemaining),
	)

	return nil
}

func (s *dispatchService) publishEvent(ctx context.Context, letter *entity.Letter, eventType string, at time.Time) {
	event := &service.LetterEvent{
		Type:        eventType,
		LetterID:    letter.ID.String(),
		SenderID:    letter.SenderID.String(),
		RecipientID: letter.RecipientID.String(),
		OccurredAt:  at.UTC().Format(time.RFC3339),
	}

	if err := s.publisher.PublishLetterEvent(ctx, event); err != nil {
		s.logger.Warn("[Dispatch] Failed to publish letter event",
			slog.String("letter_id", letter.ID.String()),
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}
