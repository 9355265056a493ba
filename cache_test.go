package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameKey(t *testing.T) {
	assert.Equal(t, "propmap:frame:abc:Carto Voyager:2000:", frameKey("abc", "Carto Voyager", "2000", ""))
}

func TestMemoryFrameCache(t *testing.T) {
	ctx := context.Background()
	c := newMemoryFrameCache()

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", "<svg/>"))
	frame, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<svg/>", frame)
}

func TestOpenFrameCacheFallsBackToMemory(t *testing.T) {
	_, isMemory := openFrameCache(context.Background(), Config{}).(*memoryFrameCache)
	assert.True(t, isMemory)

	_, isMemory = openFrameCache(context.Background(), Config{RedisAddr: "127.0.0.1:1"}).(*memoryFrameCache)
	assert.True(t, isMemory, "unreachable redis should fall back to memory")
}

// Runs against a live server when PROPMAP_TEST_REDIS_ADDR is set.
func TestRedisFrameCache(t *testing.T) {
	addr := os.Getenv("PROPMAP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PROPMAP_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c := openFrameCache(ctx, Config{RedisAddr: addr, RedisDB: 15, RedisTTL: time.Minute})
	require.IsType(t, &redisFrameCache{}, c)

	key := frameKey("test", time.Now().Format(time.RFC3339Nano))
	_, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, key, "<svg/>"))
	frame, ok, err := c.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<svg/>", frame)
}

func TestMemoryFrameCacheEvictsOldest(t *testing.T) {
	ctx := context.Background()
	c := newMemoryFrameCache()
	c.capacity = 2

	require.NoError(t, c.Set(ctx, "a", "1"))
	require.NoError(t, c.Set(ctx, "b", "2"))
	require.NoError(t, c.Set(ctx, "a", "1'"))
	require.NoError(t, c.Set(ctx, "c", "3"))

	_, ok, _ := c.Get(ctx, "a")
	assert.False(t, ok)
	frame, ok, _ := c.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, "3", frame)
	assert.Len(t, c.frames, 2)
	assert.NoError(t, c.Close())
}

func TestMemoryFrameCacheStaysBounded(t *testing.T) {
	ctx := context.Background()
	c := newMemoryFrameCache()
	for i := 0; i < 3*maxMemoryFrames; i++ {
		require.NoError(t, c.Set(ctx, frameKey("digest", time.Duration(i).String()), "<svg/>"))
	}
	assert.Len(t, c.frames, maxMemoryFrames)
	assert.Len(t, c.order, maxMemoryFrames)
}
