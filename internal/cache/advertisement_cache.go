package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"myHomeBack/internal/models"
)

const publishedKey = "advertisements:published"

// DefaultTTL is applied when no cache TTL is configured.
const DefaultTTL = 5 * time.Minute

// AdvertisementCache keeps the published-listings response in Redis for a
// short TTL. Mutations and the status cleaner invalidate it.
type AdvertisementCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAdvertisementCache(addr string, ttl time.Duration) (*AdvertisementCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &AdvertisementCache{client: client, ttl: ttl}, nil
}

func (c *AdvertisementCache) GetPublished(ctx context.Context) ([]models.Advertisement, bool, error) {
	data, err := c.client.Get(ctx, publishedKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var ads []models.Advertisement
	if err := json.Unmarshal(data, &ads); err != nil {
		return nil, false, err
	}
	return ads, true, nil
}

func (c *AdvertisementCache) SetPublished(ctx context.Context, ads []models.Advertisement) error {
	data, err := json.Marshal(ads)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, publishedKey, data, c.ttl).Err()
}

func (c *AdvertisementCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, publishedKey).Err()
}
