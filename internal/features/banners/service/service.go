package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/internal/core/cache"
	"storefront/internal/core/logger"
	"storefront/internal/features/banners/domain"
	"storefront/internal/features/banners/ports"

	"go.uber.org/zap"
)

// Cache namespace and query names.
const (
	CacheNamespace = "banners"

	queryAll     = "all"
	queryEnabled = "enabled"
)

// BannerServiceImpl implements ports.BannerService: cached reads over the
// gateway and writes that invalidate the banner cache namespace.
type BannerServiceImpl struct {
	gateway ports.Gateway
	queries *cache.Versioned
	opts    QueryOptions
	logger  *zap.Logger
}

// NewBannerService creates a new BannerServiceImpl. A nil gateway behaves as
// an unavailable one; a nil queries cache disables caching.
func NewBannerService(gateway ports.Gateway, queries *cache.Versioned, opts QueryOptions) *BannerServiceImpl {
	return &BannerServiceImpl{
		gateway: gateway,
		queries: queries,
		opts:    opts,
		logger:  logger.Named("banners"),
	}
}

// FetchAll returns every banner message from the gateway.
func (s *BannerServiceImpl) FetchAll(ctx context.Context) ([]domain.BannerMessage, error) {
	if s.gateway == nil {
		return nil, ports.ErrGatewayUnavailable
	}

	messages, err := s.query(ctx, queryAll, s.opts.FetchAll, s.gateway.GetAllBannerMessages)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch banner messages: %w", err)
	}
	return messages, nil
}

// FetchEnabled returns the enabled messages sorted by order. An unavailable
// gateway yields an empty collection instead of an error.
func (s *BannerServiceImpl) FetchEnabled(ctx context.Context) ([]domain.BannerMessage, error) {
	if s.gateway == nil {
		return []domain.BannerMessage{}, nil
	}

	messages, err := s.query(ctx, queryEnabled, s.opts.FetchEnabled, func(ctx context.Context) ([]domain.BannerMessage, error) {
		all, err := s.gateway.GetAllBannerMessages(ctx)
		if err != nil {
			return nil, err
		}
		return domain.EnabledInOrder(all), nil
	})
	if errors.Is(err, ports.ErrGatewayUnavailable) {
		s.logger.Warn("Banner gateway unavailable, serving no enabled messages", zap.Error(err))
		return []domain.BannerMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch enabled banner messages: %w", err)
	}
	return messages, nil
}

// Add creates a banner message.
func (s *BannerServiceImpl) Add(ctx context.Context, message string, order int64, enabled bool) error {
	banner, err := domain.NewBannerMessage(order, message, enabled)
	if err != nil {
		return err
	}

	return s.mutate(ctx, "add", order, func(gw ports.Gateway) error {
		return gw.AddBannerMessage(ctx, banner.Message, banner.Order, banner.Enabled)
	})
}

// Update replaces the message and flag of the banner at order.
func (s *BannerServiceImpl) Update(ctx context.Context, order int64, message string, enabled bool) error {
	banner, err := domain.NewBannerMessage(order, message, enabled)
	if err != nil {
		return err
	}

	return s.mutate(ctx, "update", order, func(gw ports.Gateway) error {
		return gw.UpdateBannerMessage(ctx, banner.Order, banner.Message, banner.Enabled)
	})
}

// Delete removes the banner at order.
func (s *BannerServiceImpl) Delete(ctx context.Context, order int64) error {
	if order < 0 {
		return domain.ErrInvalidOrder
	}

	return s.mutate(ctx, "delete", order, func(gw ports.Gateway) error {
		return gw.DeleteBannerMessage(ctx, order)
	})
}

// mutate performs a single gateway call and, on success, invalidates every
// cached banner query.
func (s *BannerServiceImpl) mutate(ctx context.Context, op string, order int64, call func(ports.Gateway) error) error {
	if s.gateway == nil {
		return ports.ErrGatewayUnavailable
	}

	if err := call(s.gateway); err != nil {
		return fmt.Errorf("service: failed to %s banner message %d: %w", op, order, err)
	}

	if s.queries != nil {
		version, err := s.queries.Invalidate(ctx)
		if err != nil {
			s.logger.Error("Failed to invalidate banner cache",
				zap.String("op", op),
				zap.Int64("order", order),
				zap.Error(err),
			)
			return nil
		}
		s.logger.Debug("Banner cache invalidated",
			zap.String("op", op),
			zap.Int64("order", order),
			zap.Int64("version", version),
		)
	}

	return nil
}

// query serves name from the versioned cache or loads it under policy and
// stores it at the version observed before loading.
func (s *BannerServiceImpl) query(ctx context.Context, name string, policy RetryPolicy, load loadFunc) ([]domain.BannerMessage, error) {
	version, cached := s.cachedVersion(ctx)
	if cached {
		if messages, ok := s.lookup(ctx, version, name); ok {
			return messages, nil
		}
	}

	messages, err := policy.run(ctx, load)
	if err != nil {
		return nil, err
	}

	if cached {
		s.store(ctx, version, name, messages)
	}
	return messages, nil
}

func (s *BannerServiceImpl) cachedVersion(ctx context.Context) (int64, bool) {
	if s.queries == nil {
		return 0, false
	}

	version, err := s.queries.Version(ctx)
	if err != nil {
		s.logger.Warn("Banner cache unavailable, reading through", zap.Error(err))
		return 0, false
	}
	return version, true
}

func (s *BannerServiceImpl) lookup(ctx context.Context, version int64, name string) ([]domain.BannerMessage, bool) {
	data, ok, err := s.queries.Get(ctx, version, name)
	if err != nil {
		s.logger.Warn("Failed to read banner cache", zap.String("query", name), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var messages []domain.BannerMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		s.logger.Warn("Discarding corrupt banner cache entry", zap.String("query", name), zap.Error(err))
		return nil, false
	}
	return messages, true
}

func (s *BannerServiceImpl) store(ctx context.Context, version int64, name string, messages []domain.BannerMessage) {
	data, err := json.Marshal(messages)
	if err != nil {
		s.logger.Warn("Failed to encode banner cache entry", zap.String("query", name), zap.Error(err))
		return
	}
	if err := s.queries.Set(ctx, version, name, data); err != nil {
		s.logger.Warn("Failed to write banner cache", zap.String("query", name), zap.Error(err))
	}
}

var _ ports.BannerService = (*BannerServiceImpl)(nil)
