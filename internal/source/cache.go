package source

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"trailviewer/internal/trail"

	"github.com/redis/go-redis/v9"
)

// Cache keeps parsed trails in Redis. A nil client turns every call into a miss.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{redis: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, src, name string) (trail.Trail, bool) {
	if c == nil || c.redis == nil {
		return trail.Trail{}, false
	}
	raw, err := c.redis.Get(ctx, cacheKey(src, name)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("trail cache get error: %v", err)
		}
		return trail.Trail{}, false
	}

	var cached trail.Trail
	if err := json.Unmarshal(raw, &cached); err != nil {
		log.Printf("trail cache decode error: %v", err)
		return trail.Trail{}, false
	}
	return trail.New(cached.Name, cached.Points), true
}

func (c *Cache) Put(ctx context.Context, src, name string, t trail.Trail) {
	if c == nil || c.redis == nil {
		return
	}
	raw, err := json.Marshal(t)
	if err != nil {
		log.Printf("trail cache encode error: %v", err)
		return
	}
	if err := c.redis.Set(ctx, cacheKey(src, name), raw, c.ttl).Err(); err != nil {
		log.Printf("trail cache set error: %v", err)
	}
}

func cacheKey(src, name string) string {
	return "trail:" + src + ":" + name
}
