package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lifelog/internal/domain/entity"
	domainerrors "lifelog/internal/domain/errors"
	"lifelog/internal/domain/repository"
	mockRepo "lifelog/internal/mocks/repository"
	mockService "lifelog/internal/mocks/service"
	"lifelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	tokenSvc *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenSvc := mockService.NewMockTokenService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewUserService(logger, userRepo, tokenSvc)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		tokenSvc: tokenSvc,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Email:       "taro@example.com",
		DisplayName: "たろう",
		Emoji:       "🐶",
	}

	var createdID uuid.UUID
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			createdID = user.ID
		}).
		Return(nil)

	fx.tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID")).
		Return("signed-access-token", nil)

	output, err := fx.service.RegisterUser(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, createdID, output.User.ID)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.DisplayName, output.User.DisplayName)
	assert.Equal(t, "signed-access-token", output.AccessToken)
	assert.False(t, output.User.LastActiveAt.IsZero())
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "taro@example.com"}

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.RegisterUser(ctx, input)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Equal(t, domainerrors.ErrUserAlreadyExists, err)
}

func TestUserService_RegisterUser_TokenError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{Email: "taro@example.com"}

	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	fx.tokenSvc.EXPECT().
		GenerateToken(mock.AnythingOfType("uuid.UUID")).
		Return("", errors.New("signing failed"))

	output, err := fx.service.RegisterUser(ctx, input)
	assert.Error(t, err)
	assert.Nil(t, output)
	assert.Contains(t, err.Error(), "failed to generate access token")
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, Email: "taro@example.com"}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestUserService_Heartbeat_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateLastActive(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.Heartbeat(ctx, userID)
	require.NoError(t, err)
}

func TestUserService_Heartbeat_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateLastActive(ctx, userID, mock.AnythingOfType("time.Time")).
		Return(repository.ErrUserNotFound)

	err := fx.service.Heartbeat(ctx, userID)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestUserService_RegisterPushToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateFCMToken(ctx, userID, "fcm-token-123").
		Return(nil)

	err := fx.service.RegisterPushToken(ctx, userID, "fcm-token-123")
	require.NoError(t, err)
}

func TestUserService_RemovePushToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		UpdateFCMToken(ctx, userID, "").
		Return(nil)

	err := fx.service.RemovePushToken(ctx, userID)
	require.NoError(t, err)
}
