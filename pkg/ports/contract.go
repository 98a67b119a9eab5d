package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunResultCacheContract runs a suite of tests to verify that a ResultCache implementation
// adheres to the defined interface contract.
func RunResultCacheContract(t *testing.T, cache ResultCache) {
	ctx := context.Background()
	key := CacheKey("drawio", "tree", false, []byte("<camelContext/>"))

	t.Run("Set and Get", func(t *testing.T) {
		err := cache.Set(ctx, key, []byte("id,component,shape,refs\n"))
		require.NoError(t, err, "Set should not return error")

		got, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, "id,component,shape,refs\n", string(got))
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, []byte("v2")))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "v2", string(got))
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("Returned Value Is A Copy", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key, []byte("abc")))

		got, err := cache.Get(ctx, key)
		require.NoError(t, err)
		got[0] = 'x'

		again, err := cache.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again))
	})
}
