package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prn-tf/tempus-tracker/internal/cache"
)

func TestCache_SetGet(t *testing.T) {
	c := NewCache()
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), 0))

	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), got)

	_, err = c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestCache_Expiry(t *testing.T) {
	c := NewCache()
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), 20*time.Millisecond))

	exists, err := c.Exists(ctx, "key")
	require.NoError(t, err)
	require.True(t, exists)

	time.Sleep(40 * time.Millisecond)

	exists, err = c.Exists(ctx, "key")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = c.Get(ctx, "key")
	require.ErrorIs(t, err, cache.ErrCacheMiss)
}

func TestCache_Delete(t *testing.T) {
	c := NewCache()
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key", []byte("value"), 0))
	require.NoError(t, c.Delete(ctx, "key"))

	exists, err := c.Exists(ctx, "key")
	require.NoError(t, err)
	require.False(t, exists)

	// Deleting a missing key is not an error.
	require.NoError(t, c.Delete(ctx, "missing"))
}

func TestCache_ValueIsolation(t *testing.T) {
	c := NewCache()
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	value := []byte("value")
	require.NoError(t, c.Set(ctx, "key", value, 0))

	// Mutating the original or the returned slice must not affect the
	// stored value.
	value[0] = 'X'
	got, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), got)

	got[0] = 'Y'
	again, err := c.Get(ctx, "key")
	require.NoError(t, err)
	require.Equal(t, []byte("value"), again)
}

func TestCache_CloseIdempotent(t *testing.T) {
	c := NewCache()
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
