package usecase

import (
	"context"

	"lifelog/internal/domain/entity"
)

// Values of the typed "type" field in the notification data payload; the
// client uses them for deep-link routing.
const (
	NotificationTypeLetter  = "letter"
	NotificationTypeWarning = "delivery_warning"
)

// PushGateway defines the interface for composing and submitting letter
// push notifications. Both methods return an error for testability, but
// callers treat the result as best-effort: lookup and transport failures
// are logged and never propagated further. A user without a registered
// push token is a normal outcome, not an error.
type PushGateway interface {
	// NotifyDelivered pushes a "your letter has arrived" notification to
	// the letter's recipient, naming the sender (with defaults when the
	// sender no longer resolves).
	NotifyDelivered(ctx context.Context, letter *entity.Letter) error

	// NotifyWarning pushes an impending-delivery warning to the letter's
	// sender, embedding the days remaining until delivery.
	NotifyWarning(ctx context.Context, letter *entity.Letter, daysRemaining int) error
}
