package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/config"
	"github.com/campus-maps/internal/repository/cache"
)

func TestNewRedis_Unreachable(t *testing.T) {
	cfg := &config.Config{Redis: config.RedisConfig{Host: "127.0.0.1", Port: 1}}

	r, err := cache.NewRedis(cfg, zap.NewNop())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Contains(t, err.Error(), "127.0.0.1:1")
}

func TestNewRedis_Connects(t *testing.T) {
	getTestRedisClient(t).Close()

	cfg := &config.Config{
		Redis:   config.RedisConfig{Host: "localhost", Port: 6379, DB: 1},
		Session: config.SessionConfig{TTL: time.Minute},
	}

	r, err := cache.NewRedis(cfg, zap.NewNop())
	require.NoError(t, err)
	defer r.Close()

	assert.NoError(t, r.Health(context.Background()))
}
