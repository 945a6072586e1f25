package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-tilemap/domain"
	"github.com/beka-birhanu/vinom-tilemap/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	mapKeyFmt  = "tilemap:map:%s"
	lockKeyFmt = "tilemap:convert_lock:%s"
)

// RedisMapCache caches maps in Redis with a TTL and guards conversions with a redsync mutex.
type RedisMapCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisMapCache initializes a RedisMapCache with the provided Redis client and TTL.
func NewRedisMapCache(client *redis.Client, ttlSeconds int) (i.MapCache, error) {
	if client == nil {
		return nil, errors.New("nil redis client")
	}
	c := &RedisMapCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	c.locker = redsync.New(pool)
	return c, nil
}

// Get returns the cached map or i.ErrCacheMiss.
func (c *RedisMapCache) Get(ctx context.Context, id uuid.UUID) (*dmn.Map, error) {
	data, err := c.client.Get(ctx, fmt.Sprintf(mapKeyFmt, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, i.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var m dmn.Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Set caches the map under its ID.
func (c *RedisMapCache) Set(ctx context.Context, m *dmn.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, fmt.Sprintf(mapKeyFmt, m.ID), data, c.ttl).Err()
}

// Lock acquires the conversion lock for a maze checksum.
func (c *RedisMapCache) Lock(ctx context.Context, checksum string) (func(), error) {
	mutex := c.locker.NewMutex(fmt.Sprintf(lockKeyFmt, checksum), redsync.WithExpiry(10*time.Second))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() {
		_, _ = mutex.Unlock()
	}, nil
}
