package goToken

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	gjwt "github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

const testIssuer = "gotoken-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.JWT.Issuer = testIssuer
	cfg.JWT.Secret = testSecret
	return cfg
}

func newEngineTest(t *testing.T) (*Engine, *miniredis.Miniredis, func()) {
	t.Helper()
	return newEngineTestWithConfig(t, testConfig(), nil)
}

func newEngineTestWithKeyStore(t *testing.T, ks KeyStore) (*Engine, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	engine, err := New().WithConfig(testConfig()).WithRedis(rdb).WithKeyStore(ks).Build()
	if err != nil {
		mr.Close()
		t.Fatalf("engine build failed: %v", err)
	}

	return engine, mr, func() {
		engine.Close()
		_ = rdb.Close()
		mr.Close()
	}
}

func newEngineTestWithConfig(t *testing.T, cfg Config, sink AuditSink) (*Engine, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	builder := New().WithConfig(cfg).WithRedis(rdb)
	if sink != nil {
		builder = builder.WithAuditSink(sink)
	}
	engine, err := builder.Build()
	if err != nil {
		mr.Close()
		t.Fatalf("engine build failed: %v", err)
	}

	return engine, mr, func() {
		engine.Close()
		_ = rdb.Close()
		mr.Close()
	}
}

// signExpiredToken crafts a token whose expiry already passed, signed with
// the engine's shared secret, so time-driven states are reachable without
// sleeping in tests.
func signExpiredToken(t *testing.T, jti string) string {
	t.Helper()

	claims := gjwt.MapClaims{
		"jti":  jti,
		"iss":  testIssuer,
		"iat":  gjwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		"exp":  gjwt.NewNumericDate(time.Now().Add(-time.Hour)),
		"role": "client",
	}
	token, err := gjwt.NewWithClaims(gjwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign expired token: %v", err)
	}
	return token
}

func newRSAKeyPairPEM(t *testing.T) (privPEM, pubPEM []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate rsa key: %v", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("marshal private key: %v", err)
	}
	privPEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: privDER})

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("marshal public key: %v", err)
	}
	pubPEM = pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	return privPEM, pubPEM
}

func mustIssue(t *testing.T, e *Engine, payload Payload, expirationSeconds int, family Family) string {
	t.Helper()
	token, err := e.IssueToken(context.Background(), payload, expirationSeconds, family)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
