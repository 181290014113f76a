package goToken

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the token lifecycle engine.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrInvalidArgument is an exported constant or variable used by the token lifecycle engine.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTokenInvalid is an exported constant or variable used by the token lifecycle engine.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrAlreadyRevoked is an exported constant or variable used by the token lifecycle engine.
	ErrAlreadyRevoked = errors.New("token already revoked")
	// ErrUnknownFamily is an exported constant or variable used by the token lifecycle engine.
	ErrUnknownFamily = errors.New("unknown signature family")
	// ErrKeyMaterialUnavailable is an exported constant or variable used by the token lifecycle engine.
	ErrKeyMaterialUnavailable = errors.New("key material unavailable")
	// ErrSigningFailed is an exported constant or variable used by the token lifecycle engine.
	ErrSigningFailed = errors.New("token signing failed")
	// ErrCacheUnavailable is an exported constant or variable used by the token lifecycle engine.
	ErrCacheUnavailable = errors.New("revocation cache unavailable")
)
