package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifelog/config"
	"lifelog/internal/domain/entity"
	"lifelog/internal/domain/repository"
	"lifelog/internal/domain/service"
	mockRepo "lifelog/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// letterCreatedFixtures holds all test dependencies for push handler tests.
type letterCreatedFixtures struct {
	handler    *LetterCreatedHandler
	letterRepo *mockRepo.MockLetterRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestLetterCreatedHandler(t *testing.T) letterCreatedFixtures {
	letterRepo := mockRepo.NewMockLetterRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	handler := NewLetterCreatedHandler(LetterCreatedHandlerParams{
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		LetterRepo: letterRepo,
		UserRepo:   userRepo,
	})

	return letterCreatedFixtures{
		handler:    handler,
		letterRepo: letterRepo,
		userRepo:   userRepo,
	}
}

func newPushRequest(t *testing.T, event *service.LetterEvent) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = event.LetterID
	pushMsg.Subscription = "projects/local/subscriptions/letter-events-sub"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events/letter-created", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func createdEvent(letterID uuid.UUID) *service.LetterEvent {
	return &service.LetterEvent{
		Type:        service.LetterEventCreated,
		LetterID:    letterID.String(),
		SenderID:    uuid.New().String(),
		RecipientID: uuid.New().String(),
	}
}

func TestLetterCreatedHandler_HandlePush_Success(t *testing.T) {
	fx := createTestLetterCreatedHandler(t)

	letterID := uuid.New()
	recipientID := uuid.New()
	c, rec := newPushRequest(t, createdEvent(letterID))

	fx.letterRepo.EXPECT().
		FindLetterByID(mock.Anything, letterID).
		Return(&entity.Letter{ID: letterID, RecipientID: recipientID}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(mock.Anything, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLetterCreatedHandler_HandlePush_LetterGoneIsAcked(t *testing.T) {
	fx := createTestLetterCreatedHandler(t)

	letterID := uuid.New()
	c, rec := newPushRequest(t, createdEvent(letterID))

	fx.letterRepo.EXPECT().
		FindLetterByID(mock.Anything, letterID).
		Return(nil, repository.ErrLetterNotFound)

	// A vanished letter must be acked, not retried forever.
	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLetterCreatedHandler_HandlePush_TransientErrorIsRetried(t *testing.T) {
	fx := createTestLetterCreatedHandler(t)

	letterID := uuid.New()
	c, rec := newPushRequest(t, createdEvent(letterID))

	fx.letterRepo.EXPECT().
		FindLetterByID(mock.Anything, letterID).
		Return(nil, errors.New("database error"))

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLetterCreatedHandler_HandlePush_IgnoresOtherEventTypes(t *testing.T) {
	fx := createTestLetterCreatedHandler(t)

	event := createdEvent(uuid.New())
	event.Type = service.LetterEventDelivered
	c, rec := newPushRequest(t, event)

	err := fx.handler.HandlePush(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLetterCreatedHandler_HandlePush_BadPayload(t *testing.T) {
	fx := createTestLetterCreatedHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "%%% not base64 %%%"
	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/events/letter-created", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err = fx.handler.HandlePush(e.NewContext(req, rec))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
