// Copyright (c) 2026 Inkpost. All rights reserved.
// Author: h.m.tran.dev@gmail.com

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/hmtran/inkpost/internal/platform/constants"
)

// RedisStore implements [Store] backed by Redis.
//
// # Key Layout
//
// session:<token>:stored_posts → JSON array of post ids, e.g. [3,1,7]
//
// Every write refreshes the TTL, giving active visitors a sliding
// 30-day session window.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed session [Store].
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
GetStoredPosts retrieves the visitor's ordered read-later post id list.

Description: An absent or expired session yields an empty list, not an error.

Parameters:
  - ctx: context.Context
  - token: the browser session token

Returns:
  - []int64: Stored post ids in insertion order (never nil)
  - error: Connectivity or corruption errors only
*/
func (store *RedisStore) GetStoredPosts(ctx context.Context, token string) ([]int64, error) {
	key := storedPostsKey(token)

	payload, err := store.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []int64{}, nil
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	var postIDs []int64
	if err := json.Unmarshal([]byte(payload), &postIDs); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	if postIDs == nil {
		postIDs = []int64{}
	}

	return postIDs, nil
}

/*
SetStoredPosts replaces the visitor's read-later list and refreshes the TTL.

Parameters:
  - ctx: context.Context
  - token: the browser session token
  - postIDs: the full replacement list (may be empty)

Returns:
  - error: Storage failures
*/
func (store *RedisStore) SetStoredPosts(ctx context.Context, token string, postIDs []int64) error {
	key := storedPostsKey(token)

	payload, err := json.Marshal(postIDs)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	if err := store.client.Set(ctx, key, payload, constants.SessionTTL).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return nil
}

// storedPostsKey builds the Redis key for a session's read-later list.
func storedPostsKey(token string) string {
	return constants.RedisPrefixSession + token + ":" + constants.SessionKeyStoredPosts
}
