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

type userService struct {
	logger   *slog.Logger
	userRepo repository.UserRepository
	tokenSvc service.TokenService
}

// NewUserService creates the account management use case used by the HTTP API.
func NewUserService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	tokenSvc service.TokenService,
) usecase.UserUsecase {
	return &userService{
		logger:   logger,
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

// RegisterUser creates an account and issues its first access token.
// Registration counts as activity, so LastActiveAt starts at now.
func (s *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterUserOutput, error) {
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		Emoji:        input.Emoji,
		LastActiveAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := s.tokenSvc.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	s.logger.Info("[User] Account registered",
		slog.String("user_id", user.ID.String()),
	)

	return &usecase.RegisterUserOutput{
		User:        user,
		AccessToken: token,
	}, nil
}

// GetProfile retrieves the user's own profile.
func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Heartbeat stamps the user's last-active timestamp. This is the signal
// that keeps their pending letters from being delivered.
func (s *userService) Heartbeat(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.UpdateLastActive(ctx, userID, time.Now()); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update last active")
	}

	return nil
}

// RegisterPushToken stores the device's FCM token for the user.
func (s *userService) RegisterPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	if err := s.userRepo.UpdateFCMToken(ctx, userID, token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to register push token")
	}

	return nil
}

// RemovePushToken clears the user's FCM token.
func (s *userService) RemovePushToken(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.UpdateFCMToken(ctx, userID, ""); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to remove push token")
	}

	return nil
}
