package impl

import (
	"context"
	"log/slog"
	"time"

	"lifelog/config"
	"lifelog/internal/domain/entity"
	"lifelog/internal/domain/repository"
	"lifelog/internal/errors"
	"lifelog/internal/usecase"
	"lifelog/internal/util"
)

// scanAction is the classification of one pending letter within a scan.
type scanAction int

const (
	actionNone scanAction = iota
	actionWarn
	actionDeliver
)

type scanService struct {
	logger     *slog.Logger
	letterRepo repository.LetterRepository
	userRepo   repository.UserRepository
	dispatch   usecase.DispatchUsecase
	cfg        *config.LetterConfig
}

// NewScanService creates the inactivity scanner. Each run classifies every
// pending letter against its sender's last-active timestamp and hands
// deliveries and warnings to the dispatcher.
func NewScanService(
	logger *slog.Logger,
	letterRepo repository.LetterRepository,
	userRepo repository.UserRepository,
	dispatch usecase.DispatchUsecase,
	cfg *config.LetterConfig,
) usecase.ScanUsecase {
	return &scanService{
		logger:     logger,
		letterRepo: letterRepo,
		userRepo:   userRepo,
		dispatch:   dispatch,
		cfg:        cfg,
	}
}

// RunScan iterates the pending letters once. Failures on individual letters
// are logged and counted, never propagated: the scheduled job as a whole
// always completes from the scheduler's point of view.
func (s *scanService) RunScan(ctx context.Context) (*usecase.ScanReport, error) {
	start := time.Now()

	letters, err := s.letterRepo.FindPendingLetters(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending letters")
	}

	report := &usecase.ScanReport{Scanned: len(letters)}
	now := time.Now()

	for _, letter := range letters {
		s.scanLetter(ctx, letter, now, report)
	}

	s.logger.Info("[Scan] Inactivity scan completed",
		slog.Int("scanned", report.Scanned),
		slog.Int("delivered", report.Delivered),
		slog.Int("warned", report.Warned),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(time.Since(start))),
	)

	return report, nil
}

func (s *scanService) scanLetter(ctx context.Context, letter *entity.Letter, now time.Time, report *usecase.ScanReport) {
	sender, err := s.userRepo.FindUserByID(ctx, letter.SenderID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Orphaned letter: the sender account is gone, so there is no
			// inactivity signal to evaluate. Leave it pending.
			s.logger.Warn("[Scan] Sender no longer exists, skipping letter",
				slog.String("letter_id", letter.ID.String()),
				slog.String("sender_id", letter.SenderID.String()),
			)
			report.Skipped++

			return
		}

		s.logger.Error("[Scan] Failed to load sender, skipping letter",
			slog.String("letter_id", letter.ID.String()),
			slog.String("sender_id", letter.SenderID.String()),
			slog.Any("error", err),
		)
		report.Failed++

		return
	}

	elapsed := now.Sub(sender.LastActiveAt)

	switch action, daysRemaining := s.classify(elapsed); action {
	case actionDeliver:
		if err := s.dispatch.DeliverLetter(ctx, letter); err != nil {
			s.logger.Error("[Scan] Failed to deliver letter",
				slog.String("letter_id", letter.ID.String()),
				slog.Any("error", err),
			)
			report.Failed++

			return
		}
		report.Delivered++

	case actionWarn:
		if s.warnedRecently(letter, now) {
			report.Skipped++

			return
		}
		if err := s.dispatch.WarnLetter(ctx, letter, daysRemaining); err != nil {
			s.logger.Error("[Scan] Failed to warn sender",
				slog.String("letter_id", letter.ID.String()),
				slog.Any("error", err),
			)
			report.Failed++

			return
		}
		report.Warned++

	default:
		report.Skipped++
	}
}

// classify maps sender inactivity to the action for one letter. Within the
// warning window the remaining time is reported in whole days, rounded up
// and never negative.
func (s *scanService) classify(elapsed time.Duration) (scanAction, int) {
	threshold := s.cfg.InactivityThreshold

	if elapsed >= threshold {
		return actionDeliver, 0
	}

	if elapsed >= threshold-s.cfg.WarningWindow {
		return actionWarn, util.CeilDays(threshold - elapsed)
	}

	return actionNone, 0
}

// warnedRecently reports whether a warning for this letter is still within
// the configured warn interval and must not be repeated yet.
func (s *scanService) warnedRecently(letter *entity.Letter, now time.Time) bool {
	return letter.LastWarnedAt != nil && now.Sub(*letter.LastWarnedAt) < s.cfg.WarnInterval
}
