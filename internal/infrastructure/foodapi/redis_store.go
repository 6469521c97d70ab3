package foodapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fridgewise/v1/internal/domain/recipe"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const snapshotKey = "fridgewise:corpus:snapshot"

// RedisSnapshotStore persists the serialized corpus snapshot in Redis
// so restarts and sibling processes skip the expensive dataset fetch.
// All Redis errors are swallowed after logging: the store is a cache
// tier, never a source of truth.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisSnapshotStore creates the Redis snapshot tier
func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSnapshotStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisSnapshotStore{client: client, ttl: ttl, logger: logger}
}

// Load reads the snapshot; ok is false on miss or any error
func (s *RedisSnapshotStore) Load(ctx context.Context) ([]recipe.PublicRecipe, bool) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("corpus snapshot load failed", zap.Error(err))
		}
		return nil, false
	}

	var corpus []recipe.PublicRecipe
	if err := json.Unmarshal(data, &corpus); err != nil {
		s.logger.Warn("corpus snapshot in redis is corrupt, ignoring", zap.Error(err))
		return nil, false
	}
	return corpus, true
}

// Save writes the snapshot with the configured TTL
func (s *RedisSnapshotStore) Save(ctx context.Context, corpus []recipe.PublicRecipe) {
	data, err := json.Marshal(corpus)
	if err != nil {
		s.logger.Warn("corpus snapshot encode failed", zap.Error(err))
		return
	}
	if err := s.client.Set(ctx, snapshotKey, data, s.ttl).Err(); err != nil {
		s.logger.Debug("corpus snapshot save failed", zap.Error(err))
	}
}
