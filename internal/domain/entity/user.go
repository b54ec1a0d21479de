// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Default display metadata used when a letter's sender can no longer be
// resolved, or never set a profile. The product copy is Japanese.
const (
	DefaultDisplayName = "誰か"
	DefaultEmoji       = "💌"
)

// User is the core entity in the system, representing a single account of
// the lifelog app. The scanner only ever reads LastActiveAt; it is written
// by the app's foreground/login flow through the heartbeat endpoint.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's primary contact email, used as a login identifier.
	DisplayName  string    // Display name shown in notification bodies.
	Emoji        string    // Profile emoji shown alongside the display name.
	FCMToken     string    // Firebase Cloud Messaging token; empty means "cannot notify".
	LastActiveAt time.Time // Last time the user opened the app. Sole signal for delivery timing.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// NotificationName returns the display name to embed in notification
// bodies, falling back to the generic default when unset.
func (u *User) NotificationName() string {
	if u == nil || u.DisplayName == "" {
		return DefaultDisplayName
	}

	return u.DisplayName
}

// NotificationEmoji returns the profile emoji for notification bodies,
// falling back to the generic envelope when unset.
func (u *User) NotificationEmoji() string {
	if u == nil || u.Emoji == "" {
		return DefaultEmoji
	}

	return u.Emoji
}
