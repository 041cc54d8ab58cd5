package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/config"
)

// pingTimeout ограничивает проверку соединения при старте
const pingTimeout = 5 * time.Second

// Redis - соединение с Redis, в котором живут сессии
type Redis struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedis подключается к REDIS_HOST:REDIS_PORT и проверяет соединение
func NewRedis(cfg *config.Config, logger *zap.Logger) (*Redis, error) {
	addr := cfg.GetRedisAddr()
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis session store %s: %w", addr, err)
	}

	logger.Info("Session store connected",
		zap.String("store", "redis"),
		zap.String("addr", addr),
		zap.Int("db", cfg.Redis.DB),
		zap.Duration("session_ttl", cfg.Session.TTL),
	)

	return NewRedisFromClient(client, logger), nil
}

// NewRedisFromClient оборачивает готовый клиент (используется в тестах)
func NewRedisFromClient(client *redis.Client, logger *zap.Logger) *Redis {
	return &Redis{client: client, logger: logger}
}

func (r *Redis) Close() error {
	r.logger.Info("Closing session store connection")
	return r.client.Close()
}

// Health - PING, используется при старте сервиса
func (r *Redis) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Client() *redis.Client {
	return r.client
}
