package goToken

import (
	"context"
	"fmt"
)

// VerifyToken validates a token end to end: structural decode, signature
// family classification from the token's own header, cryptographic
// verification under the matching credential, then a revocation lookup by
// token id. A revoked id fails verification even when signature and expiry
// check out. A cache outage fails closed.
//
// VerifyToken may return an error when input validation, dependency calls, or security checks fail.
// VerifyToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) VerifyToken(ctx context.Context, token string) (Claims, error) {
	if e == nil || e.jwtManager == nil || e.blacklist == nil {
		return nil, ErrEngineNotReady
	}
	if token == "" {
		return nil, fmt.Errorf("%w: token required", ErrInvalidArgument)
	}

	// Stage one: structural decode, no trust established. Only the
	// algorithm tag inside the token decides which credential verifies it.
	decoded, err := e.jwtManager.Decode(token)
	if err != nil {
		e.metricInc(MetricVerifyInvalid)
		e.logger.Debug().Err(err).Msg("token decode failed")
		return nil, ErrTokenInvalid
	}

	family, err := decoded.Family()
	if err != nil {
		e.metricInc(MetricVerifyInvalid)
		e.emitAudit(ctx, auditEventTokenVerifyFailure, false, decoded.Claims.TokenID(), "", err, nil)
		e.logger.Warn().Err(err).Msg("token family classification failed")
		return nil, ErrTokenInvalid
	}

	cred, err := e.credentialForVerification(family)
	if err != nil {
		e.metricInc(MetricVerifyInvalid)
		e.emitAudit(ctx, auditEventTokenVerifyFailure, false, decoded.Claims.TokenID(), Family(family), err, nil)
		return nil, ErrTokenInvalid
	}

	// Stage two: trust-establishing verification.
	claims, err := e.jwtManager.Verify(token, cred)
	if err != nil {
		e.metricInc(MetricVerifyInvalid)
		e.emitAudit(ctx, auditEventTokenVerifyFailure, false, decoded.Claims.TokenID(), Family(family), err, nil)
		e.logger.Warn().Err(err).Str("family", string(family)).Msg("token verification failed")
		return nil, ErrTokenInvalid
	}

	jti := claims.TokenID()
	if jti == "" {
		e.metricInc(MetricVerifyInvalid)
		e.logger.Warn().Msg("verified token carries no token id")
		return nil, ErrTokenInvalid
	}

	revoked, err := e.blacklist.Contains(ctx, jti)
	if err != nil {
		// Fail closed: skipping the revocation check would let a revoked
		// token pass while the cache is down.
		e.metricInc(MetricCacheUnavailable)
		e.emitAudit(ctx, auditEventCacheUnavailable, false, jti, Family(family), err, nil)
		e.logger.Error().Err(err).Str("jti", jti).Msg("revocation lookup failed")
		return nil, ErrTokenInvalid
	}
	if revoked {
		e.metricInc(MetricVerifyRevokedHit)
		e.emitAudit(ctx, auditEventTokenVerifyFailure, false, jti, Family(family), ErrAlreadyRevoked, func() map[string]string {
			return map[string]string{"reason": "revoked"}
		})
		return nil, ErrTokenInvalid
	}

	e.metricInc(MetricVerifySuccess)
	return claims, nil
}
