package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-guide/domain"
)

func TestSessionRepositoryMemory_RoundTrip(t *testing.T) {
	repo := NewSessionRepositoryMemory(0)
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	s := domain.Session{
		ID:        "abc",
		Messages:  []domain.Message{{Role: domain.RoleUser, Content: "hi"}},
		UpdatedAt: time.Now(),
	}
	require.NoError(t, repo.Save(ctx, s))

	got, ok, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, s.Messages, got.Messages)

	// Mutating the returned copy must not leak into the store.
	got.Messages[0].Content = "changed"
	again, _, _ := repo.Get(ctx, "abc")
	assert.Equal(t, "hi", again.Messages[0].Content)

	require.NoError(t, repo.Delete(ctx, "abc"))
	_, ok, _ = repo.Get(ctx, "abc")
	assert.False(t, ok)
}

func TestSessionRepositoryMemory_IdleExpiry(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Hour)
	defer repo.Stop()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.Session{ID: "s1", UpdatedAt: now}))

	now = now.Add(2 * time.Hour)
	_, ok, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepositoryMemory_CleanupSweepsIdle(t *testing.T) {
	repo := NewSessionRepositoryMemory(time.Hour)
	defer repo.Stop()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 500; i++ {
		require.NoError(t, repo.Save(ctx, domain.Session{ID: fmt.Sprintf("idle-%d", i), UpdatedAt: now}))
	}

	now = now.Add(2 * time.Hour)
	require.NoError(t, repo.Save(ctx, domain.Session{ID: "active", UpdatedAt: now}))
	repo.cleanup()

	assert.Equal(t, 1, repo.Len())
	_, ok, err := repo.Get(ctx, "active")
	require.NoError(t, err)
	assert.True(t, ok)
}
