package adapters

import (
	"context"
	"fmt"

	"storefront/internal/features/checkout/ports"

	"github.com/atotto/clipboard"
)

// SystemClipboard implements ports.Clipboard using the OS clipboard.
type SystemClipboard struct {
	write       func(string) error
	unsupported bool
}

// NewSystemClipboard creates a new SystemClipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// WriteText places text on the clipboard.
func (c *SystemClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.unsupported {
		return ports.ErrClipboardUnavailable
	}
	if err := c.write(text); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrClipboardUnavailable, err)
	}
	return nil
}
