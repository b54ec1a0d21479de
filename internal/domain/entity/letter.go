// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LetterStatus represents the lifecycle state of a letter.
type LetterStatus string

const (
	// LetterStatusPending means the letter is stored and waiting for its
	// delivery condition to be met.
	LetterStatusPending LetterStatus = "pending"

	// LetterStatusDelivered is the terminal state. A delivered letter is
	// never mutated again.
	LetterStatusDelivered LetterStatus = "delivered"
)

// Letter represents a stored message that is delivered to its recipient
// after the sender has been inactive for longer than the configured
// inactivity threshold.
type Letter struct {
	ID           uuid.UUID    `json:"id"`             // The Global Unique Identifier (GUID) for the letter.
	SenderID     uuid.UUID    `json:"sender_id"`      // The user who wrote the letter; their inactivity triggers delivery.
	RecipientID  uuid.UUID    `json:"recipient_id"`   // The user who receives the letter once it is delivered.
	Title        string       `json:"title"`          // Short title shown in the recipient's letter list.
	Body         string       `json:"body"`           // The letter content.
	Status       LetterStatus `json:"status"`         // Current lifecycle state (pending, delivered).
	DeliveredAt  *time.Time   `json:"delivered_at"`   // Set exactly once, when the letter transitions to delivered.
	LastWarnedAt *time.Time   `json:"last_warned_at"` // When the sender was last warned about impending delivery.
	CreatedAt    time.Time    `json:"created_at"`     // Timestamp of when this letter was authored.
	UpdatedAt    time.Time    `json:"updated_at"`     // Timestamp of the last modification.
}

// IsDelivered reports whether the letter has reached its terminal state.
func (l *Letter) IsDelivered() bool {
	return l.Status == LetterStatusDelivered
}
