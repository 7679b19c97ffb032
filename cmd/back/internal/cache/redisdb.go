package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = time.Second
	writeTimeout = time.Second
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(addr, password string, db int) *RedisClient {
	return &RedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,

			// A stalled cache must not hold up the request path.
			DialTimeout:  dialTimeout,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		}),
	}
}

func (r *RedisClient) Connect(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	return err
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

// IsMiss reports whether Get failed only because the key is absent.
func IsMiss(err error) bool {
	return errors.Is(err, redis.Nil)
}

// RecordKey namespaces record addresses inside the cache database.
func RecordKey(address string) string {
	return "record:" + address
}
