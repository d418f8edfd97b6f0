package ports

import (
	"context"
	"time"
)

// TokenRevoker is the revocation registry consulted on every authenticated
// request. Revoke is idempotent: re-adding a known jti is a no-op. The ttl
// hints how long the entry is worth keeping (the remaining token lifetime);
// implementations may ignore it.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
