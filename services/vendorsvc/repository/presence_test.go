package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/kdarko/sikaflow/internal/pkg/database"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return database.NewRedisClientFromExisting(client), mr
}

func TestPresence_OnlineOffline(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()

	repo := NewPresenceRepository(redisClient)
	ctx := context.Background()

	online, err := repo.IsOnline(ctx, 7)
	assert.NoError(t, err)
	assert.False(t, online)

	assert.NoError(t, repo.SetOnline(ctx, 7, true))

	online, err = repo.IsOnline(ctx, 7)
	assert.NoError(t, err)
	assert.True(t, online)

	assert.NoError(t, repo.SetOnline(ctx, 7, false))

	online, err = repo.IsOnline(ctx, 7)
	assert.NoError(t, err)
	assert.False(t, online)
}
