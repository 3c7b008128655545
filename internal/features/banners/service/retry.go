package service

import (
	"context"
	"errors"
	"time"

	"storefront/internal/features/banners/domain"
	"storefront/internal/features/banners/ports"

	"github.com/cenkalti/backoff/v5"
)

// RetryPolicy controls how a read is retried after a failed gateway attempt.
// The zero value disables retries.
type RetryPolicy struct {
	// MaxRetries is the number of attempts after the first one.
	MaxRetries uint
	// InitialInterval is the wait before the first retry; later waits grow exponentially.
	InitialInterval time.Duration
	// MaxInterval caps a single wait.
	MaxInterval time.Duration
}

// NoRetry performs a single attempt.
var NoRetry = RetryPolicy{}

// ExponentialRetry retries up to retries times starting at one second and
// doubling up to thirty seconds.
func ExponentialRetry(retries uint) RetryPolicy {
	return RetryPolicy{
		MaxRetries:      retries,
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
	}
}

// QueryOptions holds the per-read retry policies.
type QueryOptions struct {
	FetchAll     RetryPolicy
	FetchEnabled RetryPolicy
}

// DefaultQueryOptions retries FetchAll fetchAllRetries times and never
// retries FetchEnabled.
func DefaultQueryOptions(fetchAllRetries uint) QueryOptions {
	return QueryOptions{
		FetchAll:     ExponentialRetry(fetchAllRetries),
		FetchEnabled: NoRetry,
	}
}

type loadFunc func(ctx context.Context) ([]domain.BannerMessage, error)

// run executes load under the policy. Not-found, conflict and validation
// errors are never retried.
func (p RetryPolicy) run(ctx context.Context, load loadFunc) ([]domain.BannerMessage, error) {
	if p.MaxRetries == 0 {
		return load(ctx)
	}

	operation := func() ([]domain.BannerMessage, error) {
		messages, err := load(ctx)
		if err != nil && !retryable(err) {
			return nil, backoff.Permanent(err)
		}
		return messages, err
	}

	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(p.MaxRetries+1),
	)
}

func retryable(err error) bool {
	switch {
	case errors.Is(err, ports.ErrNotFound),
		errors.Is(err, ports.ErrOrderTaken),
		errors.Is(err, domain.ErrInvalidOrder),
		errors.Is(err, domain.ErrEmptyMessage),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return false
	}
	return true
}
