package usecase

import (
	"context"

	"lifelog/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput carries the request payload for creating an account.
type RegisterUserInput struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"display_name" validate:"max=60"`
	Emoji       string `json:"emoji" validate:"max=8"`
}

// RegisterUserOutput is returned on successful registration.
type RegisterUserOutput struct {
	User        *entity.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

// UserUsecase defines the interface for account management use cases.
type UserUsecase interface {
	// RegisterUser creates an account and issues an access token for it.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error)

	// GetProfile retrieves the user's own profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// Heartbeat stamps the user's last-active timestamp. The app calls this
	// on foreground/login; it is what keeps pending letters undelivered.
	Heartbeat(ctx context.Context, userID uuid.UUID) error

	// RegisterPushToken stores the device's FCM token for the user.
	RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error

	// RemovePushToken clears the user's FCM token, opting the device out of
	// push notifications.
	RemovePushToken(ctx context.Context, userID uuid.UUID) error
}
