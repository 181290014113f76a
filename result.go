package goToken

import (
	"context"
	"errors"
)

// Caller-facing result layer. It collapses the internal error taxonomy
// into the {status, message} shape the hosting HTTP layer returns to
// clients: every validation failure becomes the one generic invalid-token
// message, every infrastructure failure the administrator-contact message.
// Specific causes stay in logs and audit events only.

const (
	// StatusSuccess is an exported constant or variable used by the token lifecycle engine.
	StatusSuccess = "success"
	// StatusError is an exported constant or variable used by the token lifecycle engine.
	StatusError = "error"
)

const (
	msgTokenCreated   = "Token created successfully."
	msgTokenValid     = "The token is valid."
	msgTokenInvalid   = "The token is invalid."
	msgTokenRevoked   = "The token has been added to the blacklist."
	msgAlreadyBlocked = "The token is already blocked."
	msgIssueInternal  = "There was an error creating the token, if the problem persists contact the system administrator."
	msgCacheInternal  = "An error occurred while accessing the cache, please contact the system administrator."
)

// IssueResult defines a public type used by goToken APIs.
type IssueResult struct {
	Token   string `json:"token,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// VerifyResult defines a public type used by goToken APIs.
type VerifyResult struct {
	Payload Claims `json:"payload,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RevokeResult defines a public type used by goToken APIs.
type RevokeResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// IssueTokenResult wraps [Engine.IssueToken] into the caller-facing
// result shape.
func (e *Engine) IssueTokenResult(ctx context.Context, payload Payload, expirationSeconds int, family Family) IssueResult {
	token, err := e.IssueToken(ctx, payload, expirationSeconds, family)
	switch {
	case err == nil:
		return IssueResult{Token: token, Status: StatusSuccess, Message: msgTokenCreated}
	case errors.Is(err, ErrInvalidArgument), errors.Is(err, ErrUnknownFamily):
		return IssueResult{Status: StatusError, Message: err.Error()}
	default:
		return IssueResult{Status: StatusError, Message: msgIssueInternal}
	}
}

// VerifyTokenResult wraps [Engine.VerifyToken] into the caller-facing
// result shape. All verification failures, revocation included, surface
// as the one generic invalid-token message.
func (e *Engine) VerifyTokenResult(ctx context.Context, token string) VerifyResult {
	claims, err := e.VerifyToken(ctx, token)
	if err != nil {
		return VerifyResult{Status: StatusError, Message: msgTokenInvalid}
	}
	return VerifyResult{Payload: claims, Status: StatusSuccess, Message: msgTokenValid}
}

// RevokeTokenResult wraps [Engine.RevokeToken] into the caller-facing
// result shape. A duplicate revoke is reported distinctly so callers can
// treat it as informational rather than retrying.
func (e *Engine) RevokeTokenResult(ctx context.Context, token string) RevokeResult {
	status, err := e.RevokeToken(ctx, token)
	switch {
	case err == nil && status == RevocationDuplicate:
		return RevokeResult{Status: StatusError, Message: msgAlreadyBlocked}
	case err == nil:
		return RevokeResult{Status: StatusSuccess, Message: msgTokenRevoked}
	case errors.Is(err, ErrCacheUnavailable):
		return RevokeResult{Status: StatusError, Message: msgCacheInternal}
	default:
		return RevokeResult{Status: StatusError, Message: msgTokenInvalid}
	}
}
