package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront/internal/features/checkout/ports"
)

// RevertAfter is how long the copied indicator stays on.
const RevertAfter = 2000 * time.Millisecond

// Indicator is the visible state of the copy button.
type Indicator int

const (
	IndicatorDefault Indicator = iota
	IndicatorCopied
)

func (i Indicator) String() string {
	if i == IndicatorCopied {
		return "copied"
	}
	return "default"
}

// Timer is the part of *time.Timer the button needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func systemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// CopyButton copies a payment URI to the clipboard and tracks the indicator.
type CopyButton struct {
	text      string
	clipboard ports.Clipboard
	notifier  ports.Notifier
	afterFunc AfterFunc

	mu         sync.Mutex
	indicator  Indicator
	timer      Timer
	generation uint64
}

// NewCopyButton creates a new CopyButton for text.
func NewCopyButton(text string, clipboard ports.Clipboard, notifier ports.Notifier) *CopyButton {
	return &CopyButton{
		text:      text,
		clipboard: clipboard,
		notifier:  notifier,
		afterFunc: systemAfterFunc,
	}
}

// WithAfterFunc replaces the timer used to revert the indicator.
func (b *CopyButton) WithAfterFunc(fn AfterFunc) *CopyButton {
	b.afterFunc = fn
	return b
}

// Indicator returns the current indicator state.
func (b *CopyButton) Indicator() Indicator {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.indicator
}

// Copy writes the text to the clipboard. On success the indicator shows
// "copied" for RevertAfter; on failure the notifier is told and the
// indicator is left alone. Failures are not retried.
func (b *CopyButton) Copy(ctx context.Context) error {
	if err := b.clipboard.WriteText(ctx, b.text); err != nil {
		b.notifier.CopyFailed(err)
		return fmt.Errorf("service: failed to copy to clipboard: %w", err)
	}

	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.generation++
	gen := b.generation
	b.indicator = IndicatorCopied
	b.timer = b.afterFunc(RevertAfter, func() { b.revert(gen) })
	b.mu.Unlock()

	b.notifier.Copied(b.text)
	return nil
}

// Close stops a pending revert.
func (b *CopyButton) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *CopyButton) revert(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// A later copy owns the indicator.
	if gen != b.generation {
		return
	}
	b.indicator = IndicatorDefault
	b.timer = nil
}
