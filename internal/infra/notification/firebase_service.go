// Package notification contains the FCM implementation of the push transport.
package notification

import (
	"context"
	"fmt"

	"lifelog/config"
	"lifelog/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase push transport instance
func NewFirebaseService(ctx context.Context, cfg *config.Config) (service.PushService, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase is not configured")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Send submits a single push notification to one device token, carrying the
// APNs sound/badge hints from the message.
func (s *firebaseService) Send(ctx context.Context, msg *service.PushMessage) error {
	aps := &messaging.Aps{
		Sound: msg.Sound,
	}
	if msg.Badge != nil {
		aps.Badge = msg.Badge
	}

	message := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: aps,
			},
		},
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
