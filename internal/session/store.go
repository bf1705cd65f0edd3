package session

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Store is a flat string key/value store scoped to one device.
// Writes overwrite; there is no versioning.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Take(ctx context.Context, key string) (string, bool, error)
	All(ctx context.Context) (map[string]string, error)
}

// RedisStore keeps every key of one device in a single hash.
type RedisStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisStore(client *redis.Client, deviceID string) *RedisStore {
	return &RedisStore{Client: client, Key: "session:" + deviceID}
}

var _ Store = (*RedisStore)(nil)

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.Client.HGet(ctx, s.Key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.Client.HSet(ctx, s.Key, key, value).Err()
}

func (s *RedisStore) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	pairs := make([]interface{}, 0, len(values)*2)
	for key, value := range values {
		pairs = append(pairs, key, value)
	}
	return s.Client.HSet(ctx, s.Key, pairs...).Err()
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.Client.HDel(ctx, s.Key, keys...).Err()
}

// Take reads and removes key in one transaction.
func (s *RedisStore) Take(ctx context.Context, key string) (string, bool, error) {
	var get *redis.StringCmd
	_, err := s.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		get = pipe.HGet(ctx, s.Key, key)
		pipe.HDel(ctx, s.Key, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", false, err
	}
	value, err := get.Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *RedisStore) All(ctx context.Context) (map[string]string, error) {
	return s.Client.HGetAll(ctx, s.Key).Result()
}
