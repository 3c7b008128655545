package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Versioned scopes cache entries to a namespace whose version is bumped on
// every invalidation. Entries are written under the version the reader
// observed, so a bump makes all earlier entries unreachable at once; they
// then expire through their TTL.
type Versioned struct {
	cache     Cache
	namespace string
	ttl       time.Duration
}

// NewVersioned creates a versioned view over c for the given namespace.
func NewVersioned(c Cache, namespace string, ttl time.Duration) *Versioned {
	return &Versioned{
		cache:     c,
		namespace: namespace,
		ttl:       ttl,
	}
}

// Namespace returns the logical namespace of the entries.
func (v *Versioned) Namespace() string {
	return v.namespace
}

// Version returns the current namespace version. A namespace that was never
// invalidated is at version 0.
func (v *Versioned) Version(ctx context.Context) (int64, error) {
	data, err := v.cache.Get(ctx, v.versionKey())
	if errors.Is(err, ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt version for namespace %s: %w", v.namespace, err)
	}
	return n, nil
}

// Get returns the entry for query at version. The bool is false on a miss.
func (v *Versioned) Get(ctx context.Context, version int64, query string) ([]byte, bool, error) {
	data, err := v.cache.Get(ctx, v.entryKey(version, query))
	if errors.Is(err, ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores the entry for query at version.
func (v *Versioned) Set(ctx context.Context, version int64, query string, data []byte) error {
	return v.cache.Set(ctx, v.entryKey(version, query), data, v.ttl)
}

// Invalidate bumps the namespace version and returns the new one.
func (v *Versioned) Invalidate(ctx context.Context) (int64, error) {
	n, err := v.cache.Incr(ctx, v.versionKey())
	if err != nil {
		return 0, fmt.Errorf("failed to invalidate namespace %s: %w", v.namespace, err)
	}
	return n, nil
}

func (v *Versioned) versionKey() string {
	return v.namespace + ":version"
}

func (v *Versioned) entryKey(version int64, query string) string {
	return fmt.Sprintf("%s:v%d:%s", v.namespace, version, query)
}
