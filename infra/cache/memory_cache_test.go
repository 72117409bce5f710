package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "stats")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "stats", []byte(`{"a":1}`), time.Minute))
	got, ok, err := c.Get(ctx, "stats")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(got))

	// callers may not mutate the stored value
	got[0] = 'x'
	again, _, _ := c.Get(ctx, "stats")
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(0)
	ctx := context.Background()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 30*time.Second))
	require.NoError(t, c.Set(ctx, "forever", []byte("v"), 0))

	now = now.Add(31 * time.Second)
	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, _ = c.Get(ctx, "forever")
	assert.True(t, ok)

	c.evictExpired()
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_DeleteAndClose(t *testing.T) {
	c := NewMemoryCache(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, _ := c.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
