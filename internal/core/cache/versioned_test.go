package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersioned_StartsAtZero(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	v := NewVersioned(adapter, "banners", time.Minute)

	version, err := v.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
	assert.Equal(t, "banners", v.Namespace())
}

func TestVersioned_HitThenStaleAfterInvalidate(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	v := NewVersioned(adapter, "banners", time.Minute)
	ctx := context.Background()

	version, err := v.Version(ctx)
	require.NoError(t, err)
	require.NoError(t, v.Set(ctx, version, "all", []byte(`[1]`)))

	data, ok, err := v.Get(ctx, version, "all")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[1]`), data)

	bumped, err := v.Invalidate(ctx)
	require.NoError(t, err)
	assert.Equal(t, version+1, bumped)

	current, err := v.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, bumped, current)

	_, ok, err = v.Get(ctx, current, "all")
	require.NoError(t, err)
	assert.False(t, ok, "entries written before the bump must not be visible")
}

func TestVersioned_EntriesExpire(t *testing.T) {
	adapter, mr := newTestAdapter(t)
	v := NewVersioned(adapter, "banners", time.Second)
	ctx := context.Background()

	require.NoError(t, v.Set(ctx, 0, "enabled", []byte(`[]`)))
	mr.FastForward(2 * time.Second)

	_, ok, err := v.Get(ctx, 0, "enabled")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVersioned_NamespacesAreIsolated(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	banners := NewVersioned(adapter, "banners", time.Minute)
	other := NewVersioned(adapter, "products", time.Minute)
	ctx := context.Background()

	require.NoError(t, other.Set(ctx, 0, "all", []byte(`x`)))
	_, err := banners.Invalidate(ctx)
	require.NoError(t, err)

	_, ok, err := other.Get(ctx, 0, "all")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVersioned_CorruptVersion(t *testing.T) {
	adapter, _ := newTestAdapter(t)
	ctx := context.Background()
	require.NoError(t, adapter.Set(ctx, "banners:version", []byte("nope"), 0))

	_, err := NewVersioned(adapter, "banners", time.Minute).Version(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt version")
}
