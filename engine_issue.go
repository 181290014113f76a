package goToken

import (
	"context"
	"errors"
	"fmt"

	tokenjwt "github.com/MrEthical07/goToken/jwt"
)

// IssueToken signs a new token carrying payload under the requested
// family. payload may be empty but not nil; expirationSeconds 0 issues a
// token that never expires on its own. The specific cause of an internal
// failure is logged, never echoed to the caller.
//
// IssueToken may return an error when input validation, dependency calls, or security checks fail.
// IssueToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IssueToken(ctx context.Context, payload Payload, expirationSeconds int, family Family) (string, error) {
	if e == nil || e.jwtManager == nil {
		return "", ErrEngineNotReady
	}
	if payload == nil {
		return "", fmt.Errorf("%w: payload required", ErrInvalidArgument)
	}
	if expirationSeconds < 0 {
		return "", fmt.Errorf("%w: expirationSeconds must be >= 0", ErrInvalidArgument)
	}

	cred, err := e.credentialForSigning(family)
	if err != nil {
		if errors.Is(err, ErrUnknownFamily) {
			return "", err
		}
		e.metricInc(MetricIssueFailure)
		e.emitAudit(ctx, auditEventTokenIssueFailure, false, "", family, err, nil)
		return "", err
	}

	token, jti, err := e.jwtManager.Sign(cred, payload, expirationSeconds)
	if err != nil {
		if errors.Is(err, tokenjwt.ErrReservedClaim) {
			return "", fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		e.metricInc(MetricIssueFailure)
		e.emitAudit(ctx, auditEventTokenIssueFailure, false, "", family, err, nil)
		e.logger.Error().Err(err).Str("family", string(family)).Msg("token signing failed")
		if errors.Is(err, tokenjwt.ErrKeyMaterial) {
			return "", ErrKeyMaterialUnavailable
		}
		return "", ErrSigningFailed
	}

	e.metricInc(MetricIssueSuccess)
	e.emitAudit(ctx, auditEventTokenIssued, true, jti, family, nil, func() map[string]string {
		return map[string]string{
			"expiration_seconds": fmt.Sprintf("%d", expirationSeconds),
		}
	})

	return token, nil
}

// DecodeToken parses the token structure without verifying the signature.
// It exposes the header, claims, and signature segments for bookkeeping
// and must not be used as a substitute for VerifyToken.
func (e *Engine) DecodeToken(token string) (*DecodedToken, error) {
	if e == nil || e.jwtManager == nil {
		return nil, ErrEngineNotReady
	}
	if token == "" {
		return nil, fmt.Errorf("%w: token required", ErrInvalidArgument)
	}

	decoded, err := e.jwtManager.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	return decoded, nil
}
