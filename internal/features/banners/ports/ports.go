package ports

import (
	"context"
	"errors"

	"storefront/internal/features/banners/domain"
)

var (
	// ErrGatewayUnavailable is returned when the gateway is unset or cannot be reached.
	ErrGatewayUnavailable = errors.New("banner gateway unavailable")
	// ErrNotFound is returned when no banner message has the requested order.
	ErrNotFound = errors.New("banner message not found")
	// ErrOrderTaken is returned when adding a message whose order already exists.
	ErrOrderTaken = errors.New("banner order already exists")
)

// BannerService defines the primary port for banner operations.
type BannerService interface {
	FetchAll(ctx context.Context) ([]domain.BannerMessage, error)
	FetchEnabled(ctx context.Context) ([]domain.BannerMessage, error)
	Add(ctx context.Context, message string, order int64, enabled bool) error
	Update(ctx context.Context, order int64, message string, enabled bool) error
	Delete(ctx context.Context, order int64) error
}

// Gateway is the remote store holding the banner message collection.
// This is a Secondary Port (Driven Port).
type Gateway interface {
	GetAllBannerMessages(ctx context.Context) ([]domain.BannerMessage, error)
	AddBannerMessage(ctx context.Context, message string, order int64, enabled bool) error
	UpdateBannerMessage(ctx context.Context, order int64, message string, enabled bool) error
	DeleteBannerMessage(ctx context.Context, order int64) error
}
