package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vedakart/storefront-gateway/internal/config"
)

// indexPrefix names the per-namespace set of live keys. Invalidate reads the
// set instead of scanning the keyspace.
const indexPrefix = "nsidx"

type redisCache struct {
	client *redis.Client
	cfg    *config.CacheConfig
}

func NewRedisCache(client *redis.Client, cfg *config.CacheConfig) Cache {
	return &redisCache{
		client: client,
		cfg:    cfg,
	}
}

func indexKey(namespace string) string {
	return indexPrefix + ":" + namespace
}

func (r *redisCache) Get(ctx context.Context, key string, value any) (bool, error) {

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {

		if err == redis.Nil {
			return false, nil
		}

		return false, fmt.Errorf("failed to get key %s from redis: %w", key, err)

	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (r *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = r.cfg.DefaultTTL
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	if err := r.client.SAdd(ctx, indexKey(Namespace(key)), key).Err(); err != nil {
		return fmt.Errorf("failed to index key %s in redis: %w", key, err)
	}

	return nil
}

func (r *redisCache) Delete(ctx context.Context, key string) error {

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s from redis: %w", key, err)
	}

	if err := r.client.SRem(ctx, indexKey(Namespace(key)), key).Err(); err != nil {
		return fmt.Errorf("failed to unindex key %s in redis: %w", key, err)
	}

	return nil
}

// Invalidate drops every live key of the namespace. Deleting a set member
// twice is harmless, so concurrent invalidations of the same namespace do
// not conflict.
func (r *redisCache) Invalidate(ctx context.Context, namespace string) error {

	keys, err := r.client.SMembers(ctx, indexKey(namespace)).Result()
	if err != nil {
		return fmt.Errorf("failed to read index for namespace %s: %w", namespace, err)
	}

	if len(keys) > 0 {
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate namespace %s: %w", namespace, err)
		}
	}

	if err := r.client.Del(ctx, indexKey(namespace)).Err(); err != nil {
		return fmt.Errorf("failed to drop index for namespace %s: %w", namespace, err)
	}

	return nil
}

// Flush clears the whole cache. Used on identity switch, where every cached
// projection loses relevance at once.
func (r *redisCache) Flush(ctx context.Context) error {

	if err := r.client.FlushDB(ctx).Err(); err != nil {
		return fmt.Errorf("failed to flush redis cache: %w", err)
	}

	return nil
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
