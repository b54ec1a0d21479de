package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifelog/internal/domain/entity"
	"lifelog/internal/domain/repository"
	"lifelog/internal/domain/service"
	mockRepo "lifelog/internal/mocks/repository"
	mockService "lifelog/internal/mocks/service"
	"lifelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushGatewayFixtures holds all test dependencies for push gateway tests.
type pushGatewayFixtures struct {
	gateway  usecase.PushGateway
	userRepo *mockRepo.MockUserRepository
	pushSvc  *mockService.MockPushService
}

func createTestPushGateway(t *testing.T) pushGatewayFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSvc := mockService.NewMockPushService(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gateway := NewPushGateway(logger, userRepo, pushSvc)

	return pushGatewayFixtures{
		gateway:  gateway,
		userRepo: userRepo,
		pushSvc:  pushSvc,
	}
}

func userWithToken(id uuid.UUID, name, emoji string) *entity.User {
	return &entity.User{
		ID:           id,
		DisplayName:  name,
		Emoji:        emoji,
		FCMToken:     "fcm-token-" + id.String(),
		LastActiveAt: time.Now(),
	}
}

func TestPushGateway_NotifyDelivered_Success(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())
	recipient := userWithToken(letter.RecipientID, "はなこ", "🌸")
	sender := userWithToken(letter.SenderID, "たろう", "🐶")

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.RecipientID).
		Return(recipient, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.SenderID).
		Return(sender, nil)

	var sent *service.PushMessage
	fx.pushSvc.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, msg *service.PushMessage) {
			sent = msg
		}).
		Return(nil)

	err := fx.gateway.NotifyDelivered(ctx, letter)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, recipient.FCMToken, sent.Token)
	assert.Equal(t, "お手紙が届きました", sent.Title)
	assert.Contains(t, sent.Body, "たろう")
	assert.Contains(t, sent.Body, "🐶")
	assert.Equal(t, usecase.NotificationTypeLetter, sent.Data["type"])
	assert.Equal(t, letter.ID.String(), sent.Data["letterId"])
	assert.Equal(t, "default", sent.Sound)
	require.NotNil(t, sent.Badge)
	assert.Equal(t, 1, *sent.Badge)
}

func TestPushGateway_NotifyDelivered_SenderGoneUsesDefaults(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())
	recipient := userWithToken(letter.RecipientID, "はなこ", "🌸")

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.RecipientID).
		Return(recipient, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.SenderID).
		Return(nil, repository.ErrUserNotFound)

	var sent *service.PushMessage
	fx.pushSvc.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, msg *service.PushMessage) {
			sent = msg
		}).
		Return(nil)

	err := fx.gateway.NotifyDelivered(ctx, letter)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Contains(t, sent.Body, entity.DefaultDisplayName)
	assert.Contains(t, sent.Body, entity.DefaultEmoji)
}

func TestPushGateway_NotifyDelivered_NoTokenSkips(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())
	recipient := &entity.User{ID: letter.RecipientID}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.RecipientID).
		Return(recipient, nil)

	// No token registered: a normal no-op, never an error.
	err := fx.gateway.NotifyDelivered(ctx, letter)
	require.NoError(t, err)
}

func TestPushGateway_NotifyDelivered_RecipientGoneSkips(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.RecipientID).
		Return(nil, repository.ErrUserNotFound)

	err := fx.gateway.NotifyDelivered(ctx, letter)
	require.NoError(t, err)
}

func TestPushGateway_NotifyDelivered_TransportError(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())
	recipient := userWithToken(letter.RecipientID, "はなこ", "🌸")
	sender := userWithToken(letter.SenderID, "たろう", "🐶")

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.RecipientID).
		Return(recipient, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.SenderID).
		Return(sender, nil)

	fx.pushSvc.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		Return(errors.New("fcm unavailable"))

	err := fx.gateway.NotifyDelivered(ctx, letter)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send push notification")
}

func TestPushGateway_NotifyWarning_Success(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())
	sender := userWithToken(letter.SenderID, "たろう", "🐶")

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.SenderID).
		Return(sender, nil)

	var sent *service.PushMessage
	fx.pushSvc.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, msg *service.PushMessage) {
			sent = msg
		}).
		Return(nil)

	err := fx.gateway.NotifyWarning(ctx, letter, 2)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Equal(t, sender.FCMToken, sent.Token)
	assert.Equal(t, "お手紙のお届け予告", sent.Title)
	assert.Contains(t, sent.Body, "あと2日")
	assert.Equal(t, usecase.NotificationTypeWarning, sent.Data["type"])
	assert.Equal(t, letter.ID.String(), sent.Data["letterId"])
	assert.Nil(t, sent.Badge)
}

func TestPushGateway_NotifyWarning_NegativeDaysClampedToZero(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())
	sender := userWithToken(letter.SenderID, "たろう", "🐶")

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.SenderID).
		Return(sender, nil)

	var sent *service.PushMessage
	fx.pushSvc.EXPECT().
		Send(ctx, mock.AnythingOfType("*service.PushMessage")).
		Run(func(_ context.Context, msg *service.PushMessage) {
			sent = msg
		}).
		Return(nil)

	err := fx.gateway.NotifyWarning(ctx, letter, -1)
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Contains(t, sent.Body, "あと0日")
}

func TestPushGateway_NotifyWarning_SenderGoneSkips(t *testing.T) {
	fx := createTestPushGateway(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.SenderID).
		Return(nil, repository.ErrUserNotFound)

	err := fx.gateway.NotifyWarning(ctx, letter, 2)
	require.NoError(t, err)
}
