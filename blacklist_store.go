package goToken

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var errBlacklistRedisUnavailable = errors.New("blacklist redis unavailable")

// blacklistStore keeps one key per revoked token id. A key's presence is
// the revocation marker; its TTL is aligned by the caller to outlive the
// token it revokes.
type blacklistStore struct {
	redis     *redis.Client
	prefix    string
	opTimeout time.Duration
}

func newBlacklistStore(redisClient *redis.Client, prefix string, opTimeout time.Duration) *blacklistStore {
	return &blacklistStore{
		redis:     redisClient,
		prefix:    prefix,
		opTimeout: opTimeout,
	}
}

func (s *blacklistStore) key(jti string) string {
	return s.prefix + "-" + jti
}

func (s *blacklistStore) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, s.opTimeout)
}

// Contains reports whether jti is revoked. A cache outage is surfaced as
// an error distinct from a miss so callers can fail closed.
func (s *blacklistStore) Contains(ctx context.Context, jti string) (bool, error) {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	value, err := s.redis.Get(opCtx, s.key(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", errBlacklistRedisUnavailable, err)
	}

	return value != "", nil
}

// Add writes the revocation entry. ttl 0 persists the entry until explicit
// cleanup, the policy for tokens that carry no expiry claim. A single SET
// with expiry is atomic per key; no read-modify-write is needed.
func (s *blacklistStore) Add(ctx context.Context, jti string, ttl time.Duration) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.redis.Set(opCtx, s.key(jti), jti, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", errBlacklistRedisUnavailable, err)
	}

	return nil
}

// Ping checks cache reachability for health reporting.
func (s *blacklistStore) Ping(ctx context.Context) error {
	opCtx, cancel := s.opContext(ctx)
	defer cancel()

	if err := s.redis.Ping(opCtx).Err(); err != nil {
		return fmt.Errorf("%w: %v", errBlacklistRedisUnavailable, err)
	}
	return nil
}
