package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour

	// pendingMarker holds a claimed key until the item exists. It expires on
	// its own so a crashed request does not block the key for the full TTL.
	pendingMarker = "pending"
	pendingTTL    = 30 * time.Second

	claimAttempts = 2
)

// IdempotencyStore maps a user's Idempotency-Key to the item it created.
// Key format: idem:item:<user_id>:<key>
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl falls back to 24h.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Claim reserves key with SETNX on a pending marker. A losing caller reads the
// current value: the marker means the first request is still running.
func (s *IdempotencyStore) Claim(ctx context.Context, userID, key string) (bool, string, error) {
	k := Key(userID, key)
	for attempt := 0; attempt < claimAttempts; attempt++ {
		ok, err := s.client.SetNX(ctx, k, pendingMarker, pendingTTL).Result()
		if err != nil {
			return false, "", fmt.Errorf("idempotency claim: %w", err)
		}
		if ok {
			return true, "", nil
		}

		val, err := s.client.Get(ctx, k).Result()
		if errors.Is(err, redis.Nil) {
			// expired between SETNX and GET; try to claim again
			continue
		}
		if err != nil {
			return false, "", fmt.Errorf("idempotency lookup: %w", err)
		}
		return false, itemIDFrom(val), nil
	}
	return false, "", nil
}

// Complete replaces the pending marker with itemID for the full TTL.
func (s *IdempotencyStore) Complete(ctx context.Context, userID, key, itemID string) error {
	if err := s.client.Set(ctx, Key(userID, key), itemID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency complete: %w", err)
	}
	return nil
}

// Release deletes the key so the client can retry.
func (s *IdempotencyStore) Release(ctx context.Context, userID, key string) error {
	if err := s.client.Del(ctx, Key(userID, key)).Err(); err != nil {
		return fmt.Errorf("idempotency release: %w", err)
	}
	return nil
}

// Key builds the Redis key for a user's idempotency key.
func Key(userID, key string) string {
	return fmt.Sprintf("idem:item:%s:%s", userID, key)
}

func itemIDFrom(val string) string {
	if val == pendingMarker {
		return ""
	}
	return val
}
