package service

import (
	"context"
)

// Letter event types published on the lifecycle topic.
const (
	LetterEventCreated   = "letter.created"
	LetterEventDelivered = "letter.delivered"
)

// LetterEvent represents a letter lifecycle event for async consumers.
// The worker's letter-created hook consumes these in Pub/Sub push format.
type LetterEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`                 // letter.created or letter.delivered
	LetterID    string `json:"letter_id"`
	SenderID    string `json:"sender_id"`
	RecipientID string `json:"recipient_id"`
	OccurredAt  string `json:"occurred_at"` // RFC 3339
}

// EventPublisher defines the interface for publishing letter lifecycle
// events to a message queue.
type EventPublisher interface {
	// PublishLetterEvent publishes a letter lifecycle event for async processing.
	PublishLetterEvent(ctx context.Context, event *LetterEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
