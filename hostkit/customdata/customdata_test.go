package customdata

import (
	"context"
	"testing"

	v1 "github.com/Infigo-Official/types-for-megascript/v1"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both implementations must behave identically, so they share one suite.
func stores(t *testing.T) map[string]v1.CustomData {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return map[string]v1.CustomData{
		"memory": NewMemory(),
		"redis":  NewRedis(client),
	}
}

func TestCustomDataRoundTrip(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := store.Get(ctx, "reorder", "last_run")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "reorder", "last_run", "2026-08-26"))

			value, ok, err := store.Get(ctx, "reorder", "last_run")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "2026-08-26", value)

			require.NoError(t, store.Set(ctx, "reorder", "last_run", "2026-08-27"))
			value, _, err = store.Get(ctx, "reorder", "last_run")
			require.NoError(t, err)
			assert.Equal(t, "2026-08-27", value)
		})
	}
}

func TestCustomDataScopeIsolation(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "script-a", "counter", "1"))
			require.NoError(t, store.Set(ctx, "script-b", "counter", "99"))

			value, ok, err := store.Get(ctx, "script-a", "counter")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, "1", value)
		})
	}
}

func TestCustomDataDelete(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, store.Set(ctx, "reorder", "token", "abc"))
			require.NoError(t, store.Delete(ctx, "reorder", "token"))

			_, ok, err := store.Get(ctx, "reorder", "token")
			require.NoError(t, err)
			assert.False(t, ok)

			// Deleting a missing key is not an error.
			assert.NoError(t, store.Delete(ctx, "reorder", "token"))
		})
	}
}

func TestCustomDataKeys(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			keys, err := store.Keys(ctx, "empty")
			require.NoError(t, err)
			assert.Empty(t, keys)

			require.NoError(t, store.Set(ctx, "reorder", "b", "2"))
			require.NoError(t, store.Set(ctx, "reorder", "a", "1"))
			require.NoError(t, store.Set(ctx, "reorder", "c", "3"))

			keys, err = store.Keys(ctx, "reorder")
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b", "c"}, keys)
		})
	}
}
