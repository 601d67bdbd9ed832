package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cache behavior is exercised with nil textures so the tests never touch
// SDL; the cache only calls Destroy on entries it actually holds.

func TestTextureCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewTextureCacheWithSize(3)

	for i := 0; i < 3; i++ {
		cache.Set(fmt.Sprintf("key%d", i), nil)
	}
	require.Equal(t, 3, cache.Len())

	// Touch key0 so key1 becomes the eviction candidate.
	cache.Get("key0")
	cache.Set("key3", nil)

	require.Equal(t, 3, cache.Len())
	require.Equal(t, []string{"key3", "key0", "key2"}, cache.Keys())
}

func TestTextureCache_SetExistingKeyPromotes(t *testing.T) {
	cache := NewTextureCacheWithSize(2)
	cache.Set("a", nil)
	cache.Set("b", nil)

	cache.Set("a", nil)
	require.Equal(t, []string{"a", "b"}, cache.Keys())

	cache.Set("c", nil)
	require.Equal(t, []string{"c", "a"}, cache.Keys())
}

func TestTextureCache_GetMissing(t *testing.T) {
	cache := NewTextureCache()
	require.Nil(t, cache.Get("missing"))
}

func TestTextureCache_Destroy(t *testing.T) {
	cache := NewTextureCacheWithSize(4)
	cache.Set("a", nil)
	cache.Set("b", nil)

	cache.Destroy()
	require.Zero(t, cache.Len())
	require.Nil(t, cache.Get("a"))
}

func TestTextureCache_MinimumSize(t *testing.T) {
	cache := NewTextureCacheWithSize(0)
	cache.Set("a", nil)
	cache.Set("b", nil)
	require.Equal(t, 1, cache.Len())
	require.Equal(t, []string{"b"}, cache.Keys())
}
