package jwt

import (
	"errors"
	"testing"
	"time"

	gjwt "github.com/golang-jwt/jwt/v5"
)

func TestVerifyRejectsCrossFamilyCredential(t *testing.T) {
	m := newTestManager(t)
	privPEM, pubPEM := newRSAKeyPair(t)

	symToken, _, err := m.Sign(Symmetric{Secret: testSecret}, map[string]any{}, 60)
	if err != nil {
		t.Fatalf("sign symmetric: %v", err)
	}
	asymToken, _, err := m.Sign(Asymmetric{PrivateKey: privPEM}, map[string]any{}, 60)
	if err != nil {
		t.Fatalf("sign asymmetric: %v", err)
	}

	if _, err := m.Verify(symToken, Asymmetric{PublicKey: pubPEM}); err == nil {
		t.Fatal("symmetric token must not verify against an asymmetric credential")
	}
	if _, err := m.Verify(asymToken, Symmetric{Secret: testSecret}); err == nil {
		t.Fatal("asymmetric token must not verify against a symmetric credential")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newTestManager(t)
	cred := Symmetric{Secret: testSecret}

	token, _, err := m.Sign(cred, map[string]any{"role": "client"}, 60)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// Flip one byte at a time across the token; every mutation must fail.
	// The final character of a segment is skipped: its low bits can fall
	// into base64 padding that a non-strict decoder ignores, leaving the
	// decoded bytes unchanged.
	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		if i == len(token)-1 || token[i+1] == '.' {
			continue
		}
		mutated := []byte(token)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == token {
			continue
		}
		if _, err := m.Verify(string(mutated), cred); err == nil {
			t.Fatalf("tampered token accepted (byte %d)", i)
		}
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	m := newTestManager(t)

	claims := gjwt.MapClaims{
		"jti": "expired-1",
		"iss": "gotoken-test",
		"iat": gjwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		"exp": gjwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := gjwt.NewWithClaims(gjwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = m.Verify(token, Symmetric{Secret: testSecret})
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyNotYetValidToken(t *testing.T) {
	m := newTestManager(t)

	claims := gjwt.MapClaims{
		"jti": "future-1",
		"iss": "gotoken-test",
		"iat": gjwt.NewNumericDate(time.Now()),
		"nbf": gjwt.NewNumericDate(time.Now().Add(time.Hour)),
		"exp": gjwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
	}
	token, err := gjwt.NewWithClaims(gjwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = m.Verify(token, Symmetric{Secret: testSecret})
	if !errors.Is(err, ErrTokenNotYetValid) {
		t.Fatalf("expected ErrTokenNotYetValid, got %v", err)
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	m := newTestManager(t)

	claims := gjwt.MapClaims{
		"jti": "other-issuer",
		"iss": "someone-else",
		"iat": gjwt.NewNumericDate(time.Now()),
		"exp": gjwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := gjwt.NewWithClaims(gjwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(token, Symmetric{Secret: testSecret}); err == nil {
		t.Fatal("expected wrong issuer to fail")
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	m := newTestManager(t)

	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJqdGkiOiJ4In0."
	if _, err := m.Verify(unsigned, Symmetric{Secret: testSecret}); err == nil {
		t.Fatal("expected unsigned token to be rejected")
	}
}

func TestVerifyLeewayToleratesClockSkew(t *testing.T) {
	m, err := NewManager(Config{Issuer: "gotoken-test", Leeway: 30 * time.Second})
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	claims := gjwt.MapClaims{
		"jti": "leeway-1",
		"iss": "gotoken-test",
		"iat": gjwt.NewNumericDate(time.Now().Add(-time.Hour)),
		"exp": gjwt.NewNumericDate(time.Now().Add(-15 * time.Second)),
	}
	token, err := gjwt.NewWithClaims(gjwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := m.Verify(token, Symmetric{Secret: testSecret}); err != nil {
		t.Fatalf("expiry within leeway must verify: %v", err)
	}
}

func TestNewManagerValidation(t *testing.T) {
	if _, err := NewManager(Config{}); err == nil {
		t.Fatal("expected empty issuer to be rejected")
	}
	if _, err := NewManager(Config{Issuer: "x", Leeway: -time.Second}); err == nil {
		t.Fatal("expected negative leeway to be rejected")
	}
	if _, err := NewManager(Config{Issuer: "x", Leeway: 3 * time.Minute}); err == nil {
		t.Fatal("expected oversized leeway to be rejected")
	}
}
