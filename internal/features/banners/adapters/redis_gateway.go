package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/core/cache"
	"storefront/internal/features/banners/domain"
	"storefront/internal/features/banners/ports"
)

const bannerMessagesKey = "banner_messages"

// RedisGateway implements ports.Gateway by keeping the whole collection as a
// single JSON document in the cache store. Writes are read-modify-write with
// no locking.
type RedisGateway struct {
	cache cache.Cache
}

// NewRedisGateway creates a new RedisGateway.
func NewRedisGateway(c cache.Cache) *RedisGateway {
	return &RedisGateway{
		cache: c,
	}
}

// GetAllBannerMessages returns every stored message sorted by order.
func (r *RedisGateway) GetAllBannerMessages(ctx context.Context) ([]domain.BannerMessage, error) {
	return r.load(ctx)
}

// AddBannerMessage stores a new message; the order must not exist yet.
func (r *RedisGateway) AddBannerMessage(ctx context.Context, message string, order int64, enabled bool) error {
	messages, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, m := range messages {
		if m.Order == order {
			return fmt.Errorf("%w: %d", ports.ErrOrderTaken, order)
		}
	}

	messages = append(messages, domain.BannerMessage{Order: order, Message: message, Enabled: enabled})
	return r.save(ctx, messages)
}

// UpdateBannerMessage replaces the text and flag of the message at order.
func (r *RedisGateway) UpdateBannerMessage(ctx context.Context, order int64, message string, enabled bool) error {
	messages, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range messages {
		if messages[i].Order == order {
			messages[i].Message = message
			messages[i].Enabled = enabled
			return r.save(ctx, messages)
		}
	}

	return fmt.Errorf("%w: %d", ports.ErrNotFound, order)
}

// DeleteBannerMessage removes the message at order.
func (r *RedisGateway) DeleteBannerMessage(ctx context.Context, order int64) error {
	messages, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range messages {
		if messages[i].Order == order {
			messages = append(messages[:i], messages[i+1:]...)
			return r.save(ctx, messages)
		}
	}

	return fmt.Errorf("%w: %d", ports.ErrNotFound, order)
}

func (r *RedisGateway) load(ctx context.Context) ([]domain.BannerMessage, error) {
	data, err := r.cache.Get(ctx, bannerMessagesKey)
	if errors.Is(err, cache.ErrKeyNotFound) {
		return []domain.BannerMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrGatewayUnavailable, err)
	}

	var messages []domain.BannerMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal banner messages: %w", err)
	}

	domain.SortByOrder(messages)
	return messages, nil
}

func (r *RedisGateway) save(ctx context.Context, messages []domain.BannerMessage) error {
	domain.SortByOrder(messages)

	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal banner messages: %w", err)
	}

	// TTL 0: the collection never expires.
	if err := r.cache.Set(ctx, bannerMessagesKey, data, 0); err != nil {
		return fmt.Errorf("%w: %w", ports.ErrGatewayUnavailable, err)
	}
	return nil
}

var _ ports.Gateway = (*RedisGateway)(nil)
