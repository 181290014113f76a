package internal

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	tokenIDRawSize    = 16
	defaultSecretSize = 32
)

// NewTokenID returns a fresh token identifier: 16 cryptographically secure
// random bytes, hex encoded. Collision probability across issuances is
// negligible, which is what makes the id usable as a revocation cache key.
func NewTokenID() (string, error) {
	var raw [tokenIDRawSize]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw[:]), nil
}

// NewSecret returns lengthInBytes cryptographically secure random bytes in
// hex form. The output is twice as long as lengthInBytes due to the
// encoding. Sizes below one byte fall back to the 32-byte default.
func NewSecret(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		lengthInBytes = defaultSecretSize
	}
	raw := make([]byte, lengthInBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
