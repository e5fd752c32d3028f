package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	featuredTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) (*RedisCache, func()) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	cleanup := func() {
		_ = client.Close()
	}

	return &RedisCache{client: client, featuredTTL: cfg.FeaturedTTL}, cleanup
}

// GetFeaturedHotels returns the cached listing, or nil on a cache miss.
func (c *RedisCache) GetFeaturedHotels(ctx context.Context) ([]*queries.HotelListItem, error) {
	data, err := c.client.Get(ctx, featuredHotelsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to get featured hotels from cache")
	}

	var hotels []*queries.HotelListItem
	if err := json.Unmarshal(data, &hotels); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached featured hotels")
	}
	return hotels, nil
}

func (c *RedisCache) SetFeaturedHotels(ctx context.Context, hotels []*queries.HotelListItem) error {
	payload, err := json.Marshal(hotels)
	if err != nil {
		return errs.Wrap(err, "failed to encode featured hotels")
	}
	if err := c.client.Set(ctx, featuredHotelsKey(), payload, c.featuredTTL).Err(); err != nil {
		return errs.Wrap(err, "failed to cache featured hotels")
	}
	return nil
}

// IncrementRequestCount bumps the per-client counter for the current
// rate-limit window and returns the new count. The key expires with the
// window, so counters reset without any cleanup job.
func (c *RedisCache) IncrementRequestCount(ctx context.Context, clientIP string, window time.Duration) (int64, error) {
	key := rateLimitKey(clientIP)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errs.Wrap(err, "failed to increment rate limit counter")
	}

	return incr.Val(), nil
}

func featuredHotelsKey() string {
	return "cache:hotels:featured"
}

func rateLimitKey(clientIP string) string {
	return fmt.Sprintf("ratelimit:%s", clientIP)
}
