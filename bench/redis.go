package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// DefaultStream is the Redis stream results are published to.
const DefaultStream = "imgbench:results"

// RedisPublisher appends run records to a Redis stream so results from
// several machines can be gathered in one place.
type RedisPublisher struct {
	client *redis.Client
	stream string
}

// NewRedisPublisher connects to the Redis server at addr.
func NewRedisPublisher(ctx context.Context, addr, stream string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	if stream == "" {
		stream = DefaultStream
	}
	return &RedisPublisher{client: client, stream: stream}, nil
}

// Close releases the connection.
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

// Publish adds rec to the stream and returns the entry ID.
func (p *RedisPublisher) Publish(ctx context.Context, rec *Record) (string, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{"run_id": rec.RunID, "data": b},
	}).Result()
}
