package service

import (
	"context"
)

// PushMessage is a single platform notification addressed to one device
// token. Sound and Badge are the platform delivery hints: delivery
// notifications carry both, warnings carry sound only (Badge nil).
type PushMessage struct {
	Token string            // Device push token.
	Title string            // Notification title.
	Body  string            // Notification body text.
	Data  map[string]string // Typed payload for client-side deep-link routing.
	Sound string            // APNs sound name, e.g. "default".
	Badge *int              // APNs badge count; nil leaves the badge untouched.
}

// PushService defines the interface for the push notification transport.
type PushService interface {
	// Send submits a single notification to the push transport. Failures
	// are returned to the caller, which is expected to treat them as
	// non-fatal (log and continue); this layer never retries.
	Send(ctx context.Context, msg *PushMessage) error
}
