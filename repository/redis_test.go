package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-guide/domain"
)

// These run only against a live server: M3_TEST_REDIS_ADDR=localhost:6379.
func redisAddr(t *testing.T) string {
	addr := os.Getenv("M3_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("M3_TEST_REDIS_ADDR not set")
	}
	return addr
}

func TestRedisStores(t *testing.T) {
	addr := redisAddr(t)
	ctx := context.Background()

	client, err := NewRedisClient(ctx, addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	t.Run("cache", func(t *testing.T) {
		cache := NewRedisCache(client, time.Minute)
		key := uuid.NewString()
		require.NoError(t, cache.Set(ctx, key, "42"))
		val, ok := cache.Get(ctx, key)
		require.True(t, ok)
		assert.Equal(t, "42", val)
	})

	t.Run("sessions", func(t *testing.T) {
		repo := NewSessionRepositoryRedis(client, time.Minute)
		s := domain.Session{
			ID:       uuid.NewString(),
			Messages: []domain.Message{{Role: domain.RoleUser, Content: "hello"}},
		}
		require.NoError(t, repo.Save(ctx, s))

		got, ok, err := repo.Get(ctx, s.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hello", got.Messages[0].Content)

		require.NoError(t, repo.Delete(ctx, s.ID))
		_, ok, err = repo.Get(ctx, s.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
