package goToken

import (
	"context"
	"fmt"
	"time"
)

// RevokeToken adds a token's id to the blacklist so later verifications
// reject it even though its signature stays valid. The token is decoded,
// not verified: revoking an already-expired token is a defined operation,
// not an error. A second revoke of the same token reports
// [RevocationDuplicate] rather than failing; under concurrent first-time
// revokes of one token both callers may observe [RevocationApplied], an
// accepted best-effort relaxation since the end state is identical.
//
// RevokeToken may return an error when input validation, dependency calls, or security checks fail.
// RevokeToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) RevokeToken(ctx context.Context, token string) (RevocationStatus, error) {
	if e == nil || e.jwtManager == nil || e.blacklist == nil {
		return "", ErrEngineNotReady
	}
	if token == "" {
		return "", fmt.Errorf("%w: token required", ErrInvalidArgument)
	}

	decoded, err := e.jwtManager.Decode(token)
	if err != nil {
		e.logger.Debug().Err(err).Msg("revoke target decode failed")
		return "", ErrTokenInvalid
	}

	jti := decoded.Claims.TokenID()
	if jti == "" {
		e.logger.Warn().Msg("revoke target carries no token id")
		return "", ErrTokenInvalid
	}

	revoked, err := e.blacklist.Contains(ctx, jti)
	if err != nil {
		e.metricInc(MetricCacheUnavailable)
		e.emitAudit(ctx, auditEventCacheUnavailable, false, jti, "", err, nil)
		e.logger.Error().Err(err).Str("jti", jti).Msg("revocation lookup failed")
		return "", ErrCacheUnavailable
	}
	if revoked {
		e.metricInc(MetricRevokeDuplicate)
		e.emitAudit(ctx, auditEventTokenRevokeDuplicate, true, jti, "", nil, nil)
		return RevocationDuplicate, nil
	}

	ttl := e.revocationTTL(decoded)

	if err := e.blacklist.Add(ctx, jti, ttl); err != nil {
		e.metricInc(MetricCacheUnavailable)
		e.emitAudit(ctx, auditEventCacheUnavailable, false, jti, "", err, nil)
		e.logger.Error().Err(err).Str("jti", jti).Msg("revocation write failed")
		return "", ErrCacheUnavailable
	}

	e.metricInc(MetricRevokeSuccess)
	e.emitAudit(ctx, auditEventTokenRevoked, true, jti, "", nil, func() map[string]string {
		return map[string]string{"entry_ttl": ttl.String()}
	})

	return RevocationApplied, nil
}

// revocationTTL derives the blacklist entry lifetime. The entry must never
// expire before the token it revokes: remaining lifetime plus the safety
// margin for expiring tokens, the configured unbounded/explicit-cleanup
// policy for tokens that carry no expiry claim.
func (e *Engine) revocationTTL(decoded *DecodedToken) time.Duration {
	expiresAt, hasExpiry := decoded.Claims.ExpiresAt()
	if !hasExpiry {
		return e.config.Blacklist.NoExpiryEntryTTL
	}

	remaining := time.Until(expiresAt)
	if remaining < 0 {
		remaining = 0
	}
	return remaining + e.config.Blacklist.SafetyMargin
}
