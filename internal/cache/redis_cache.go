package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

const keyPrefix = "precificapro:snapshot:"

type RedisSnapshotCache struct {
	client *redis.Client
}

func NewRedisSnapshotCache(addr string, password string, db int) *RedisSnapshotCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisSnapshotCache{client: client}
}

// NewRedisSnapshotCacheFromClient shares an existing client, e.g. with the
// session store.
func NewRedisSnapshotCacheFromClient(client *redis.Client) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client}
}

func (c *RedisSnapshotCache) Client() *redis.Client {
	return c.client
}

func (c *RedisSnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSnapshotCache) Close() error {
	return c.client.Close()
}

func salesKey(scope string) string {
	return keyPrefix + scope + ":sales"
}

func metricsKey(scope string) string {
	return keyPrefix + scope + ":metrics"
}

func (c *RedisSnapshotCache) GetSales(ctx context.Context, scope string) ([]domain.Sale, bool, error) {
	var sales []domain.Sale
	found, err := c.getJSON(ctx, salesKey(scope), &sales)
	if err != nil || !found {
		return nil, false, err
	}
	return sales, true, nil
}

func (c *RedisSnapshotCache) SetSales(ctx context.Context, scope string, sales []domain.Sale, ttl time.Duration) error {
	return c.setJSON(ctx, salesKey(scope), sales, ttl)
}

func (c *RedisSnapshotCache) GetMetrics(ctx context.Context, scope string) (*domain.DashboardMetrics, bool, error) {
	var metrics domain.DashboardMetrics
	found, err := c.getJSON(ctx, metricsKey(scope), &metrics)
	if err != nil || !found {
		return nil, false, err
	}
	return &metrics, true, nil
}

func (c *RedisSnapshotCache) SetMetrics(ctx context.Context, scope string, metrics domain.DashboardMetrics, ttl time.Duration) error {
	return c.setJSON(ctx, metricsKey(scope), metrics, ttl)
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context, scope string) error {
	return c.client.Del(ctx, salesKey(scope), metricsKey(scope)).Err()
}

func (c *RedisSnapshotCache) getJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisSnapshotCache) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
