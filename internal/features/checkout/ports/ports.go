package ports

import (
	"context"
	"errors"
)

// ErrClipboardUnavailable is returned when the platform has no usable clipboard.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard is a write-only text clipboard.
// This is a Secondary Port (Driven Port).
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier surfaces transient copy feedback to the user.
type Notifier interface {
	Copied(text string)
	CopyFailed(err error)
}
