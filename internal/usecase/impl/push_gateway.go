package impl

import (
	"context"
	"fmt"
	"log/slog"

	"lifelog/internal/domain/entity"
	"lifelog/internal/domain/repository"
	"lifelog/internal/domain/service"
	"lifelog/internal/errors"
	"lifelog/internal/usecase"

	"github.com/google/uuid"
)

const deliveredBadgeCount = 1

type pushGateway struct {
	logger   *slog.Logger
	userRepo repository.UserRepository
	pushSvc  service.PushService
}

// NewPushGateway creates the gateway that composes and submits letter push
// notifications. All lookup and transport failures are logged here with the
// offending user id; the returned error exists so callers and tests can
// observe the outcome, not so anyone retries.
func NewPushGateway(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	pushSvc service.PushService,
) usecase.PushGateway {
	return &pushGateway{
		logger:   logger,
		userRepo: userRepo,
		pushSvc:  pushSvc,
	}
}

// NotifyDelivered pushes the arrival notification to the letter's recipient.
func (g *pushGateway) NotifyDelivered(ctx context.Context, letter *entity.Letter) error {
	recipient, ok := g.resolveTarget(ctx, letter, letter.RecipientID)
	if !ok {
		return nil
	}

	// The sender may have deleted their account since authoring the letter;
	// the notification then falls back to the generic name and emoji.
	sender, err := g.userRepo.FindUserByID(ctx, letter.SenderID)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		g.logger.Warn("[PushGateway] Failed to resolve sender, using defaults",
			slog.String("user_id", letter.SenderID.String()),
			slog.String("letter_id", letter.ID.String()),
			slog.Any("error", err),
		)
	}

	badge := deliveredBadgeCount
	msg := &service.PushMessage{
		Token: recipient.FCMToken,
		Title: "お手紙が届きました",
		Body: fmt.Sprintf("%s %sさんからのお手紙が届いています",
			sender.NotificationEmoji(), sender.NotificationName()),
		Data: map[string]string{
			"type":     usecase.NotificationTypeLetter,
			"letterId": letter.ID.String(),
		},
		Sound: "default",
		Badge: &badge,
	}

	return g.send(ctx, letter, letter.RecipientID.String(), msg)
}

// NotifyWarning pushes the impending-delivery warning to the letter's sender.
func (g *pushGateway) NotifyWarning(ctx context.Context, letter *entity.Letter, daysRemaining int) error {
	sender, ok := g.resolveTarget(ctx, letter, letter.SenderID)
	if !ok {
		return nil
	}

	if daysRemaining < 0 {
		daysRemaining = 0
	}

	msg := &service.PushMessage{
		Token: sender.FCMToken,
		Title: "お手紙のお届け予告",
		Body: fmt.Sprintf("あと%d日ログインがないと、大切な人へお手紙が届けられます",
			daysRemaining),
		Data: map[string]string{
			"type":     usecase.NotificationTypeWarning,
			"letterId": letter.ID.String(),
		},
		Sound: "default",
	}

	return g.send(ctx, letter, letter.SenderID.String(), msg)
}

// resolveTarget looks up the notification target and their push token.
// A missing user or unregistered token is a normal no-op, not a failure.
func (g *pushGateway) resolveTarget(ctx context.Context, letter *entity.Letter, targetID uuid.UUID) (*entity.User, bool) {
	user, err := g.userRepo.FindUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			g.logger.Info("[PushGateway] Target user no longer exists, skipping notification",
				slog.String("user_id", targetID.String()),
				slog.String("letter_id", letter.ID.String()),
			)

			return nil, false
		}

		g.logger.Error("[PushGateway] Failed to resolve notification target",
			slog.String("user_id", targetID.String()),
			slog.String("letter_id", letter.ID.String()),
			slog.Any("error", err),
		)

		return nil, false
	}

	if user.FCMToken == "" {
		g.logger.Info("[PushGateway] No push token registered, skipping notification",
			slog.String("user_id", targetID.String()),
			slog.String("letter_id", letter.ID.String()),
		)

		return nil, false
	}

	return user, true
}

func (g *pushGateway) send(ctx context.Context, letter *entity.Letter, userID string, msg *service.PushMessage) error {
	if err := g.pushSvc.Send(ctx, msg); err != nil {
		g.logger.Error("[PushGateway] Failed to send push notification",
			slog.String("user_id", userID),
			slog.String("letter_id", letter.ID.String()),
			slog.Any("error", err),
		)

		return errors.Wrap(err, "failed to send push notification")
	}

	g.logger.Info("[PushGateway] Push notification sent",
		slog.String("user_id", userID),
		slog.String("letter_id", letter.ID.String()),
		slog.String("type", msg.Data["type"]),
	)

	return nil
}
