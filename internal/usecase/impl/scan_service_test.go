package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lifelog/config"
	"lifelog/internal/domain/entity"
	"lifelog/internal/domain/repository"
	mockRepo "lifelog/internal/mocks/repository"
	mockUsecase "lifelog/internal/mocks/usecase"
	"lifelog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanServiceFixtures holds all test dependencies for scan service tests.
type scanServiceFixtures struct {
	service    usecase.ScanUsecase
	letterRepo *mockRepo.MockLetterRepository
	userRepo   *mockRepo.MockUserRepository
	dispatch   *mockUsecase.MockDispatchUsecase
}

func createTestScanService(t *testing.T) scanServiceFixtures {
	letterRepo := mockRepo.NewMockLetterRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	dispatch := mockUsecase.NewMockDispatchUsecase(t)

	cfg := &config.LetterConfig{
		InactivityThreshold: 30 * 24 * time.Hour,
		WarningWindow:       3 * 24 * time.Hour,
		WarnInterval:        24 * time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewScanService(logger, letterRepo, userRepo, dispatch, cfg)

	return scanServiceFixtures{
		service:    service,
		letterRepo: letterRepo,
		userRepo:   userRepo,
		dispatch:   dispatch,
	}
}

func pendingLetter(senderID uuid.UUID) *entity.Letter {
	return &entity.Letter{
		ID:          uuid.New(),
		SenderID:    senderID,
		RecipientID: uuid.New(),
		Title:       "いつもありがとう",
		Body:        "もしこの手紙が届いたら",
		Status:      entity.LetterStatusPending,
	}
}

func senderActiveAgo(id uuid.UUID, ago time.Duration) *entity.User {
	return &entity.User{
		ID:           id,
		LastActiveAt: time.Now().Add(-ago),
	}
}

func TestScanService_RunScan_DeliversPastThreshold(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	senderID := uuid.New()
	letter := pendingLetter(senderID)

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{letter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, senderID).
		Return(senderActiveAgo(senderID, 31*24*time.Hour), nil)

	fx.dispatch.EXPECT().
		DeliverLetter(ctx, letter).
		Return(nil)

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 0, report.Warned)
	assert.Equal(t, 0, report.Failed)
}

func TestScanService_RunScan_WarnsInsideWindow(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	senderID := uuid.New()
	letter := pendingLetter(senderID)

	// 28 days inactive with a 30 day threshold: inside the 3 day warning
	// window, 2 days remaining.
	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{letter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, senderID).
		Return(senderActiveAgo(senderID, 28*24*time.Hour), nil)

	fx.dispatch.EXPECT().
		WarnLetter(ctx, letter, 2).
		Return(nil)

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Warned)
	assert.Equal(t, 0, report.Delivered)
}

func TestScanService_RunScan_SkipsOutsideWindow(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	senderID := uuid.New()
	letter := pendingLetter(senderID)

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{letter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, senderID).
		Return(senderActiveAgo(senderID, time.Hour), nil)

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Warned)
}

func TestScanService_RunScan_SkipsRecentlyWarnedLetter(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	senderID := uuid.New()
	letter := pendingLetter(senderID)
	warnedAt := time.Now().Add(-time.Hour)
	letter.LastWarnedAt = &warnedAt

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{letter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, senderID).
		Return(senderActiveAgo(senderID, 28*24*time.Hour), nil)

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Warned)
}

func TestScanService_RunScan_WarnsAgainAfterInterval(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	senderID := uuid.New()
	letter := pendingLetter(senderID)
	warnedAt := time.Now().Add(-25 * time.Hour)
	letter.LastWarnedAt = &warnedAt

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{letter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, senderID).
		Return(senderActiveAgo(senderID, 28*24*time.Hour), nil)

	fx.dispatch.EXPECT().
		WarnLetter(ctx, letter, 2).
		Return(nil)

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Warned)
}

func TestScanService_RunScan_SkipsOrphanedLetter(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	letter := pendingLetter(uuid.New())

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{letter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, letter.SenderID).
		Return(nil, repository.ErrUserNotFound)

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Failed)
}

func TestScanService_RunScan_IsolatesPerLetterFailures(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	brokenLetter := pendingLetter(uuid.New())
	dueLetter := pendingLetter(uuid.New())

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{brokenLetter, dueLetter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, brokenLetter.SenderID).
		Return(nil, errors.New("database error"))

	fx.userRepo.EXPECT().
		FindUserByID(ctx, dueLetter.SenderID).
		Return(senderActiveAgo(dueLetter.SenderID, 31*24*time.Hour), nil)

	fx.dispatch.EXPECT().
		DeliverLetter(ctx, dueLetter).
		Return(nil)

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Scanned)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Delivered)
}

func TestScanService_RunScan_CountsDeliveryFailure(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()
	senderID := uuid.New()
	letter := pendingLetter(senderID)

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return([]*entity.Letter{letter}, nil)

	fx.userRepo.EXPECT().
		FindUserByID(ctx, senderID).
		Return(senderActiveAgo(senderID, 31*24*time.Hour), nil)

	fx.dispatch.EXPECT().
		DeliverLetter(ctx, letter).
		Return(errors.New("push transport down"))

	report, err := fx.service.RunScan(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Delivered)
}

func TestScanService_RunScan_ListError(t *testing.T) {
	fx := createTestScanService(t)

	ctx := context.Background()

	fx.letterRepo.EXPECT().
		FindPendingLetters(ctx).
		Return(nil, errors.New("database error"))

	report, err := fx.service.RunScan(ctx)
	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to list pending letters")
}
