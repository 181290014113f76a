package goToken

import (
	tokenjwt "github.com/MrEthical07/goToken/jwt"
)

// Family selects the signature family for issuance. Verification never
// consults it: the family of an inbound token is read from the token's own
// header via decode-then-dispatch.
type Family string

const (
	// FamilySync is the shared-secret (HMAC) family.
	FamilySync Family = "sync"
	// FamilyAsync is the public/private key (RSA) family.
	FamilyAsync Family = "async"
)

// Payload is the caller-supplied claim set carried by a token. It may be
// empty but not nil. Managed claims (jti, iss, iat, exp, nbf) are owned by
// the engine and cannot be supplied through the payload.
type Payload = map[string]any

// Claims re-exports the decoded claim view from the jwt sub-package.
type Claims = tokenjwt.Claims

// DecodedToken re-exports the structural decode result from the jwt
// sub-package. It establishes no trust.
type DecodedToken = tokenjwt.DecodedToken

// RevocationStatus is the outcome of [Engine.RevokeToken].
type RevocationStatus string

const (
	// RevocationApplied means a new revocation entry was written.
	RevocationApplied RevocationStatus = "revoked"
	// RevocationDuplicate means the token id was already revoked. This is
	// informational, not an error: the end state is identical.
	RevocationDuplicate RevocationStatus = "already-revoked"
)

// KeyStore is the narrow interface through which asymmetric key material
// is loaded. Key bytes are read per use and never cached inside the
// engine, so rotation on disk is picked up without a restart.
type KeyStore interface {
	ReadPrivateKey() ([]byte, error)
	ReadPublicKey() ([]byte, error)
}
