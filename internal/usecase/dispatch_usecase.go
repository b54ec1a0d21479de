package usecase

import (
	"context"

	"lifelog/internal/domain/entity"
)

// DispatchUsecase defines the interface for acting on a classified letter:
// the delivery transition and the impending-delivery warning.
type DispatchUsecase interface {
	// DeliverLetter atomically transitions the letter to delivered, then
	// notifies the recipient. The status write happens-before the push so
	// that a push failure can never leave the letter undelivered; the push
	// itself is best-effort.
	DeliverLetter(ctx context.Context, letter *entity.Letter) error

	// WarnLetter notifies the letter's sender that continued inactivity
	// will deliver the letter in daysRemaining days, then stamps
	// lastWarnedAt so the warning is not repeated within the warn interval.
	WarnLetter(ctx context.Context, letter *entity.Letter, daysRemaining int) error
}
