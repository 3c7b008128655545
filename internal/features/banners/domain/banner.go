package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidOrder is returned when a banner order is negative.
	ErrInvalidOrder = errors.New("invalid banner order")
	// ErrEmptyMessage is returned when a banner message is blank.
	ErrEmptyMessage = errors.New("banner message is empty")
)

// BannerMessage is a short promotional text shown in the storefront ticker.
type BannerMessage struct {
	// Order is unique and defines the display sequence.
	Order int64 `json:"order"`
	// Message is the text displayed in the ticker.
	Message string `json:"message"`
	// Enabled controls whether the message is shown.
	Enabled bool `json:"enabled"`
}

// NewBannerMessage creates a BannerMessage and validates it.
func NewBannerMessage(order int64, message string, enabled bool) (*BannerMessage, error) {
	if order < 0 {
		return nil, ErrInvalidOrder
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	return &BannerMessage{
		Order:   order,
		Message: message,
		Enabled: enabled,
	}, nil
}

// EnabledInOrder returns the enabled messages sorted ascending by Order.
// The input slice is left untouched.
func EnabledInOrder(messages []BannerMessage) []BannerMessage {
	enabled := make([]BannerMessage, 0, len(messages))
	for _, m := range messages {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Order < enabled[j].Order
	})

	return enabled
}

// SortByOrder sorts messages ascending by Order in place.
func SortByOrder(messages []BannerMessage) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Order < messages[j].Order
	})
}

// Texts returns the message texts in slice order.
func Texts(messages []BannerMessage) []string {
	texts := make([]string, 0, len(messages))
	for _, m := range messages {
		texts = append(texts, m.Message)
	}
	return texts
}
