package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"StrikeoutSync/internal/model"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisTTL 未配置时的热缓存有效期
const DefaultRedisTTL = 30 * time.Minute

// RedisCache 统计快照热缓存，key 形如 strikeout:pitcher_stats:2024-06-01:gerrit cole
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a new Redis snapshot cache
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultRedisTTL
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl}
}

// NewRedisClient 按 redis:// URL 创建客户端
func NewRedisClient(rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("解析REDIS_URL失败: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (c *RedisCache) key(kind model.SnapshotKind, key string, date time.Time) string {
	return snapshotKey(c.prefix, kind, key, date)
}

func snapshotKey(prefix string, kind model.SnapshotKind, key string, date time.Time) string {
	k := fmt.Sprintf("%s:%s:%s", kind, model.StatDay(date).Format("2006-01-02"), key)
	if prefix == "" {
		return k
	}
	return prefix + ":" + k
}

func (c *RedisCache) Load(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, dst any) (bool, error) {
	data, err := c.client.Get(ctx, c.key(kind, key, date)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading snapshot: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("unmarshaling snapshot: %w", err)
	}
	return true, nil
}

func (c *RedisCache) Store(ctx context.Context, kind model.SnapshotKind, key string, date time.Time, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}
	return c.client.Set(ctx, c.key(kind, key, date), data, c.ttl).Err()
}

// Ping 健康检查
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
