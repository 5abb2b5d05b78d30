package customdata

import (
	"context"
	"errors"
	"fmt"
	"sort"

	v1 "github.com/Infigo-Official/types-for-megascript/v1"
	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces the store inside a shared Redis instance.
const keyPrefix = "megascript:customdata:"

// Redis is a v1.CustomData implementation backed by Redis. Each scope maps
// to one hash, so scope listing and key listing stay O(scope) rather than
// O(keyspace).
type Redis struct {
	client redis.UniversalClient
}

var _ v1.CustomData = (*Redis)(nil)

// NewRedis wraps the given client.
func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{client: client}
}

func scopeKey(scope string) string {
	return keyPrefix + scope
}

// Get implements v1.CustomData
func (r *Redis) Get(ctx context.Context, scope, key string) (string, bool, error) {
	value, err := r.client.HGet(ctx, scopeKey(scope), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("customdata: get %s/%s: %w", scope, key, err)
	}
	return value, true, nil
}

// Set implements v1.CustomData
func (r *Redis) Set(ctx context.Context, scope, key, value string) error {
	if err := r.client.HSet(ctx, scopeKey(scope), key, value).Err(); err != nil {
		return fmt.Errorf("customdata: set %s/%s: %w", scope, key, err)
	}
	return nil
}

// Delete implements v1.CustomData
func (r *Redis) Delete(ctx context.Context, scope, key string) error {
	if err := r.client.HDel(ctx, scopeKey(scope), key).Err(); err != nil {
		return fmt.Errorf("customdata: delete %s/%s: %w", scope, key, err)
	}
	return nil
}

// Keys implements v1.CustomData. Keys are returned sorted.
func (r *Redis) Keys(ctx context.Context, scope string) ([]string, error) {
	keys, err := r.client.HKeys(ctx, scopeKey(scope)).Result()
	if err != nil {
		return nil, fmt.Errorf("customdata: keys %s: %w", scope, err)
	}
	sort.Strings(keys)
	return keys, nil
}
