package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

type sessionRepository struct {
	client *redis.Client
	logger *zap.Logger
	ttl    time.Duration
}

// NewSessionRepository - состояние контроллеров в Redis, JSON с TTL на каждый ключ
func NewSessionRepository(redis *Redis, ttl time.Duration) repository.SessionRepository {
	return &sessionRepository{
		client: redis.Client(),
		logger: redis.logger,
		ttl:    ttl,
	}
}

func lineMapperKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + ":lines"
}

func campusPathsKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + ":campus"
}

func (r *sessionRepository) GetLineMapper(ctx context.Context, sessionID string) (*domain.LineMapperState, error) {
	var state domain.LineMapperState
	found, err := r.getJSON(ctx, lineMapperKey(sessionID), &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

func (r *sessionRepository) SaveLineMapper(ctx context.Context, sessionID string, state domain.LineMapperState) error {
	return r.setJSON(ctx, lineMapperKey(sessionID), state)
}

func (r *sessionRepository) GetCampusPaths(ctx context.Context, sessionID string) (*domain.CampusPathsState, error) {
	var state domain.CampusPathsState
	found, err := r.getJSON(ctx, campusPathsKey(sessionID), &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

func (r *sessionRepository) SaveCampusPaths(ctx context.Context, sessionID string, state domain.CampusPathsState) error {
	return r.setJSON(ctx, campusPathsKey(sessionID), state)
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, lineMapperKey(sessionID), campusPathsKey(sessionID)).Err()
	if err != nil {
		r.logger.Error("Failed to delete session", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Errorf("session delete error: %w", err)
	}

	r.logger.Debug("Session deleted", zap.String("session_id", sessionID))
	return nil
}

// getJSON returns found=false on a cache miss.
func (r *sessionRepository) getJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		r.logger.Error("Failed to get session", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("session get error: %w", err)
	}

	if err := json.Unmarshal(val, out); err != nil {
		r.logger.Error("Failed to unmarshal session", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("unmarshal session: %w", err)
	}

	return true, nil
}

func (r *sessionRepository) setJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		r.logger.Error("Failed to marshal session", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save session", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("session set error: %w", err)
	}

	r.logger.Debug("Session saved", zap.String("key", key), zap.Duration("ttl", r.ttl))
	return nil
}
