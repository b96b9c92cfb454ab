package domain

import (
	"context"
	"time"
)

// GuidanceProvider defines how the core application obtains guidance text
// from a generative-text service.
type GuidanceProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Asset is the raw content behind a theme image reference.
type Asset struct {
	Data        []byte
	ContentType string
}

// ThemeAssetFetcher loads theme images. The core never reads files or
// sockets itself.
type ThemeAssetFetcher interface {
	Fetch(ctx context.Context, ref string) (Asset, error)
}

type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyWarning NotificationKind = "warning"
	NotifyError   NotificationKind = "error"
)

// Notification is a toast shown to the seeker.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Total     int              `json:"total"` // counter value after this one
	CreatedAt time.Time        `json:"created_at"`
}

// Notifier delivers notifications to whatever is displaying the session.
type Notifier interface {
	Notify(ctx context.Context, sessionID SessionID, n Notification) error
}
