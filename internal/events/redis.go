package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"nft-marketplace/internal/models"
)

// RedisPublisher publishes marketplace events as JSON on per-item Redis
// pub/sub channels (market_events:{itemID}), ready for a broadcast layer to
// fan out to clients.
type RedisPublisher struct {
	client *redis.Client
}

// NewRedisPublisher connects to Redis and verifies the connection.
func NewRedisPublisher(addr string) (*RedisPublisher, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &RedisPublisher{client: rdb}, nil
}

func (p *RedisPublisher) Publish(ctx context.Context, event models.MarketEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	channel := fmt.Sprintf("market_events:%d", event.Item.ItemID)
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("publish event %s to %s: %w", event.EventID, channel, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
