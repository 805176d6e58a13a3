package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

// NewRedisClient builds a Redis client from config.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// Redis stores search results as JSON with a server-side TTL, so expiry
// needs no bookkeeping on our end.
type Redis struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (c *Redis) Get(ctx context.Context, key string) ([]model.Item, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []model.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *Redis) Put(ctx context.Context, key string, items []model.Item) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, raw, Freshness)
}
