package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// FrameCache stores rendered SVG frames by the fingerprint of the scene
// they were rendered from.
type FrameCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, frame string) error
	Close() error
}

func frameKey(parts ...string) string {
	return "propmap:frame:" + strings.Join(parts, ":")
}

// maxMemoryFrames bounds the in-memory cache. Popup toggles alone can
// produce any number of distinct frames.
const maxMemoryFrames = 64

// memoryFrameCache is the fallback when no Redis address is configured. It
// keeps the most recently stored frames and evicts the oldest first.
type memoryFrameCache struct {
	mu       sync.RWMutex
	frames   map[string]string
	order    []string
	capacity int
}

func newMemoryFrameCache() *memoryFrameCache {
	return &memoryFrameCache{frames: make(map[string]string), capacity: maxMemoryFrames}
}

func (c *memoryFrameCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	frame, ok := c.frames[key]
	return frame, ok, nil
}

func (c *memoryFrameCache) Set(_ context.Context, key, frame string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.frames[key]; !ok {
		c.order = append(c.order, key)
	}
	c.frames[key] = frame
	for len(c.order) > c.capacity {
		delete(c.frames, c.order[0])
		c.order = c.order[1:]
	}
	return nil
}

func (c *memoryFrameCache) Close() error { return nil }

type redisFrameCache struct {
	client *redis.Client
	ttl    time.Duration
}

func (c *redisFrameCache) Get(ctx context.Context, key string) (string, bool, error) {
	frame, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return frame, true, nil
}

func (c *redisFrameCache) Set(ctx context.Context, key, frame string) error {
	return c.client.Set(ctx, key, frame, c.ttl).Err()
}

func (c *redisFrameCache) Close() error {
	return c.client.Close()
}

// openFrameCache returns a Redis-backed cache when cfg names a reachable
// server and an in-memory cache otherwise.
func openFrameCache(ctx context.Context, cfg Config) FrameCache {
	entry := log.WithField("prefix", "cache")
	if cfg.RedisAddr == "" {
		entry.Info("redis disabled, using in-memory frame cache")
		return newMemoryFrameCache()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		entry.Warnf("redis ping %s failed (%v), using in-memory frame cache", cfg.RedisAddr, err)
		_ = client.Close()
		return newMemoryFrameCache()
	}
	entry.Infof("frame cache on redis %s db %d", cfg.RedisAddr, cfg.RedisDB)
	return &redisFrameCache{client: client, ttl: cfg.RedisTTL}
}
