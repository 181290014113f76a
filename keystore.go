package goToken

import (
	"fmt"
	"os"
)

// FileKeyStore reads PEM key material from disk on every call. No caching:
// rotated key files take effect on the next issuance or verification.
type FileKeyStore struct {
	PrivateKeyPath string
	PublicKeyPath  string
}

// ReadPrivateKey describes the readprivatekey operation and its observable behavior.
//
// ReadPrivateKey may return an error when input validation, dependency calls, or security checks fail.
// ReadPrivateKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s FileKeyStore) ReadPrivateKey() ([]byte, error) {
	if s.PrivateKeyPath == "" {
		return nil, fmt.Errorf("private key path not configured")
	}
	data, err := os.ReadFile(s.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	return data, nil
}

// ReadPublicKey describes the readpublickey operation and its observable behavior.
//
// ReadPublicKey may return an error when input validation, dependency calls, or security checks fail.
// ReadPublicKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s FileKeyStore) ReadPublicKey() ([]byte, error) {
	if s.PublicKeyPath == "" {
		return nil, fmt.Errorf("public key path not configured")
	}
	data, err := os.ReadFile(s.PublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	return data, nil
}

// StaticKeyStore serves fixed key bytes, mainly for tests and embedded
// deployments.
type StaticKeyStore struct {
	PrivateKey []byte
	PublicKey  []byte
}

// ReadPrivateKey describes the readprivatekey operation and its observable behavior.
//
// ReadPrivateKey may return an error when input validation, dependency calls, or security checks fail.
// ReadPrivateKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s StaticKeyStore) ReadPrivateKey() ([]byte, error) {
	if len(s.PrivateKey) == 0 {
		return nil, fmt.Errorf("private key not configured")
	}
	return s.PrivateKey, nil
}

// ReadPublicKey describes the readpublickey operation and its observable behavior.
//
// ReadPublicKey may return an error when input validation, dependency calls, or security checks fail.
// ReadPublicKey does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s StaticKeyStore) ReadPublicKey() ([]byte, error) {
	if len(s.PublicKey) == 0 {
		return nil, fmt.Errorf("public key not configured")
	}
	return s.PublicKey, nil
}
