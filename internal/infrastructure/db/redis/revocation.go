package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const minEntryTTL = time.Minute

// RevokedTokenSet is a revocation registry backed by Redis, for deployments
// where revocations must survive restarts or be shared between replicas.
// Key format: revoked:<jti>, expiring once the token itself has expired.
type RevokedTokenSet struct {
	client *redis.Client
}

func NewRevokedTokenSet(client *redis.Client) *RevokedTokenSet {
	return &RevokedTokenSet{client: client}
}

// Revoke records a jti. The entry expires after ttl (the remaining token
// lifetime) so the registry prunes itself; a floor guards against clock skew
// around tokens that are already near expiry.
func (s *RevokedTokenSet) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl < minEntryTTL {
		ttl = minEntryTTL
	}
	if err := s.client.Set(ctx, s.key(jti), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the jti has been revoked.
func (s *RevokedTokenSet) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (s *RevokedTokenSet) key(jti string) string {
	return "revoked:" + jti
}
