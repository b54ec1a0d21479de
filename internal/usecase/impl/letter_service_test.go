package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifelog/internal/domain/entity"
	domainerrors "lifelog/internal/domain/errors"
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

// letterServiceFixtures holds all test dependencies for letter service tests.
type letterServiceFixtures struct {
	service    usecase.LetterUsecase
	letterRepo *mockRepo.MockLetterRepository
	userRepo   *mockRepo.MockUserRepository
	publisher  *mockService.MockEventPublisher
}

func createTestLetterService(t *testing.T) letterServiceFixtures {
	letterRepo := mockRepo.NewMockLetterRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewLetterService(logger, letterRepo, userRepo, publisher)

	return letterServiceFixtures{
		service:    service,
		letterRepo: letterRepo,
		userRepo:   userRepo,
		publisher:  publisher,
	}
}

func TestLetterService_CreateLetter_Success(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()
	input := &usecase.CreateLetterInput{
		RecipientID: recipientID.String(),
		Title:       "いつもありがとう",
		Body:        "もしこの手紙が届いたら、元気でいてください。",
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	fx.letterRepo.EXPECT().
		CreateLetter(ctx, mock.AnythingOfType("*entity.Letter")).
		Return(nil)

	var published *service.LetterEvent
	fx.publisher.EXPECT().
		PublishLetterEvent(ctx, mock.AnythingOfType("*service.LetterEvent")).
		Run(func(_ context.Context, event *service.LetterEvent) {
			published = event
		}).
		Return(nil)

	letter, err := fx.service.CreateLetter(ctx, senderID, input)
	require.NoError(t, err)
	require.NotNil(t, letter)
	assert.Equal(t, senderID, letter.SenderID)
	assert.Equal(t, recipientID, letter.RecipientID)
	assert.Equal(t, input.Title, letter.Title)
	assert.Equal(t, entity.LetterStatusPending, letter.Status)
	assert.Nil(t, letter.DeliveredAt)

	require.NotNil(t, published)
	assert.Equal(t, service.LetterEventCreated, published.Type)
	assert.Equal(t, letter.ID.String(), published.LetterID)
}

func TestLetterService_CreateLetter_InvalidRecipientID(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	input := &usecase.CreateLetterInput{
		RecipientID: "not-a-uuid",
		Title:       "タイトル",
		Body:        "本文",
	}

	letter, err := fx.service.CreateLetter(ctx, uuid.New(), input)
	assert.Error(t, err)
	assert.Nil(t, letter)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestLetterService_CreateLetter_RecipientNotFound(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	input := &usecase.CreateLetterInput{
		RecipientID: recipientID.String(),
		Title:       "タイトル",
		Body:        "本文",
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, recipientID).
		Return(nil, repository.ErrUserNotFound)

	letter, err := fx.service.CreateLetter(ctx, uuid.New(), input)
	assert.Error(t, err)
	assert.Nil(t, letter)
	assert.Equal(t, domainerrors.ErrRecipientNotFound, err)
}

func TestLetterService_CreateLetter_PublishFailureIsNonFatal(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	input := &usecase.CreateLetterInput{
		RecipientID: recipientID.String(),
		Title:       "タイトル",
		Body:        "本文",
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	fx.letterRepo.EXPECT().
		CreateLetter(ctx, mock.AnythingOfType("*entity.Letter")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishLetterEvent(ctx, mock.AnythingOfType("*service.LetterEvent")).
		Return(errors.New("broker unavailable"))

	// The letter is stored; a lost event only costs async consumers a trigger.
	letter, err := fx.service.CreateLetter(ctx, uuid.New(), input)
	require.NoError(t, err)
	assert.NotNil(t, letter)
}

func TestLetterService_CreateLetter_StoreError(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	input := &usecase.CreateLetterInput{
		RecipientID: recipientID.String(),
		Title:       "タイトル",
		Body:        "本文",
	}

	fx.userRepo.EXPECT().
		FindUserByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	fx.letterRepo.EXPECT().
		CreateLetter(ctx, mock.AnythingOfType("*entity.Letter")).
		Return(errors.New("database error"))

	letter, err := fx.service.CreateLetter(ctx, uuid.New(), input)
	assert.Error(t, err)
	assert.Nil(t, letter)
	assert.Contains(t, err.Error(), "failed to create letter")
}

func TestLetterService_GetLetter_SenderReadsPending(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())

	fx.letterRepo.EXPECT().
		FindLetterByID(ctx, letter.ID).
		Return(letter, nil)

	got, err := fx.service.GetLetter(ctx, letter.SenderID, letter.ID)
	require.NoError(t, err)
	assert.Equal(t, letter, got)
}

func TestLetterService_GetLetter_RecipientReadsDelivered(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())
	deliveredAt := time.Now()
	letter.Status = entity.LetterStatusDelivered
	letter.DeliveredAt = &deliveredAt

	fx.letterRepo.EXPECT().
		FindLetterByID(ctx, letter.ID).
		Return(letter, nil)

	got, err := fx.service.GetLetter(ctx, letter.RecipientID, letter.ID)
	require.NoError(t, err)
	assert.Equal(t, letter, got)
}

func TestLetterService_GetLetter_RecipientBlockedWhilePending(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())

	fx.letterRepo.EXPECT().
		FindLetterByID(ctx, letter.ID).
		Return(letter, nil)

	got, err := fx.service.GetLetter(ctx, letter.RecipientID, letter.ID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrLetterOwnershipViolation, err)
}

func TestLetterService_GetLetter_StrangerBlocked(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())

	fx.letterRepo.EXPECT().
		FindLetterByID(ctx, letter.ID).
		Return(letter, nil)

	got, err := fx.service.GetLetter(ctx, uuid.New(), letter.ID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrLetterOwnershipViolation, err)
}

func TestLetterService_GetLetter_NotFound(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	letterID := uuid.New()

	fx.letterRepo.EXPECT().
		FindLetterByID(ctx, letterID).
		Return(nil, repository.ErrLetterNotFound)

	got, err := fx.service.GetLetter(ctx, uuid.New(), letterID)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrLetterNotFound, err)
}

func TestLetterService_ListLettersBySender(t *testing.T) {
	fx := createTestLetterService(t)

	ctx := context.Background()
	senderID := uuid.New()
	expected := []*entity.Letter{pendingLetter(senderID), pendingLetter(senderID)}

	fx.letterRepo.EXPECT().
		FindLettersBySender(ctx, senderID).
		Return(expected, nil)

	letters, err := fx.service.ListLettersBySender(ctx, senderID)
	require.NoError(t, err)
	assert.Equal(t, expected, letters)
}
