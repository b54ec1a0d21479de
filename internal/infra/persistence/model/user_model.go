// Package model contains the GORM persistence structs mapped to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	Emoji        string    `gorm:"type:varchar(16)"`
	FCMToken     string    `gorm:"type:varchar(255)"`
	LastActiveAt time.Time `gorm:"not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
