package model

import (
	"time"

	"github.com/google/uuid"
)

// LetterModel is the GORM-specific struct for the 'letters' table.
// The partial index on status keeps the pending scan cheap even when the
// table is dominated by delivered rows.
type LetterModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Body         string    `gorm:"type:text;not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	DeliveredAt  *time.Time
	LastWarnedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LetterModel) TableName() string {
	return "letters"
}
