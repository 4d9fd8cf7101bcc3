package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/burakmert236/matchday/common/errors"
)

// RedisStore keeps each collection as a JSON string value, overwritten
// whole on every write.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (r *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(err, apperrors.CodeRedisOperationError, "failed to read key "+key)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, nil
	}

	return true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal value for key "+key)
	}

	if err := r.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeRedisOperationError, "failed to write key "+key)
	}

	return nil
}

func (r *RedisStore) SetMulti(ctx context.Context, entries []Entry) error {
	pipe := r.client.TxPipeline()

	for _, entry := range entries {
		raw, err := json.Marshal(entry.Value)
		if err != nil {
			return apperrors.Wrap(err, apperrors.CodeObjectMarshalError, "failed to marshal value for key "+entry.Key)
		}
		pipe.Set(ctx, entry.Key, raw, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.CodeRedisOperationError, "failed to execute multi-key write")
	}

	return nil
}

func (r *RedisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.CodeRedisOperationError, "failed to remove key "+key)
	}

	return nil
}
