package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const nonceKeyFmt = "payment:nonce:%d:%s" // apiId, nonce

// NonceStore enforces single-use nonces across gateway replicas via Redis
// SET NX. A nil *NonceStore disables replay protection, which matches the
// protocol's default behavior: any signed nonce is accepted until expiry.
type NonceStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewNonceStore(rdb *redis.Client, ttl time.Duration) *NonceStore {
	return &NonceStore{rdb: rdb, ttl: ttl}
}

// Consume marks the nonce as spent. It returns true exactly once per
// (apiId, nonce) pair within the TTL window; later callers get false.
func (s *NonceStore) Consume(ctx context.Context, apiID uint64, nonce string) (bool, error) {
	if s == nil {
		return true, nil
	}
	key := fmt.Sprintf(nonceKeyFmt, apiID, nonce)
	ok, err := s.rdb.SetNX(ctx, key, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("consume nonce: %w", err)
	}
	return ok, nil
}
