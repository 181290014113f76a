package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrEthical07/goToken/internal"
)

// Family identifies a signature family. The family of an issued token is
// derived from the credential used to sign it, never from a caller flag.
type Family string

const (
	// FamilySymmetric is the shared-secret (HMAC) signature family.
	FamilySymmetric Family = "symmetric"
	// FamilyAsymmetric is the public/private key (RSA) signature family.
	FamilyAsymmetric Family = "asymmetric"
)

var (
	// ErrSignatureInvalid is returned when a token's signature does not verify.
	ErrSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenExpired is returned when a token is past its expiry claim.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenNotYetValid is returned when a token is used before its not-before bound.
	ErrTokenNotYetValid = errors.New("token not yet valid")
	// ErrTokenMalformed is returned when a token cannot be parsed structurally.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrKeyMaterial is returned when key material cannot be parsed or decrypted.
	ErrKeyMaterial = errors.New("invalid key material")
	// ErrReservedClaim is returned when a payload key shadows a managed claim.
	ErrReservedClaim = errors.New("payload key shadows a managed claim")
	// ErrAlgorithmNone is returned for unsigned ("none" algorithm) tokens.
	ErrAlgorithmNone = errors.New("unsigned algorithm rejected")
)

// Credential is the tagged union of signing/verification material. The
// concrete type decides the signature family: [Symmetric] signs with
// HS256, [Asymmetric] with RS256. Dispatching on the type rather than a
// caller-supplied flag closes the algorithm-confusion hole.
type Credential interface {
	family() Family
}

// Symmetric is a shared-secret credential. The same secret signs and
// verifies.
type Symmetric struct {
	Secret []byte
}

func (Symmetric) family() Family { return FamilySymmetric }

// Asymmetric is a key-pair credential. PrivateKey (PEM, optionally
// passphrase-encrypted) signs; PublicKey (PEM) verifies. Either side may
// be nil when only the other operation is needed.
type Asymmetric struct {
	PrivateKey []byte
	Passphrase string
	PublicKey  []byte
}

func (Asymmetric) family() Family { return FamilyAsymmetric }

// Config defines a public type used by goToken APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Issuer string
	Leeway time.Duration
}

// Manager defines a public type used by goToken APIs.
//
// Manager instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Manager struct {
	config Config
}

// NewManager describes the newmanager operation and its observable behavior.
//
// NewManager may return an error when input validation, dependency calls, or security checks fail.
// NewManager does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewManager(cfg Config) (*Manager, error) {
	if strings.TrimSpace(cfg.Issuer) == "" {
		return nil, errors.New("issuer required")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	return &Manager{config: cfg}, nil
}

// Claims is the decoded payload of a token: caller-supplied fields plus
// the managed claims (jti, iss, iat, optional exp).
type Claims map[string]any

// TokenID returns the jti claim, or "" when absent.
func (c Claims) TokenID() string {
	id, _ := c["jti"].(string)
	return id
}

// Issuer returns the iss claim, or "" when absent.
func (c Claims) Issuer() string {
	iss, _ := c["iss"].(string)
	return iss
}

// ExpiresAt returns the exp claim as a time. The second return is false
// for tokens issued without an expiry.
func (c Claims) ExpiresAt() (time.Time, bool) {
	return c.timeClaim("exp")
}

// IssuedAt returns the iat claim as a time, when present.
func (c Claims) IssuedAt() (time.Time, bool) {
	return c.timeClaim("iat")
}

func (c Claims) timeClaim(name string) (time.Time, bool) {
	switch v := c[name].(type) {
	case float64:
		return time.Unix(int64(v), 0), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return time.Time{}, false
		}
		return time.Unix(n, 0), true
	case *jwt.NumericDate:
		if v == nil {
			return time.Time{}, false
		}
		return v.Time, true
	default:
		return time.Time{}, false
	}
}

// DecodedToken is the structural view of a token produced by
// [Manager.Decode]. It establishes no trust.
type DecodedToken struct {
	Header    map[string]any
	Claims    Claims
	Signature string
}

// Family classifies the token by the algorithm tag embedded in its own
// header: HMAC ("HS*") algorithms are symmetric, everything else
// asymmetric. Unsigned tokens are rejected outright.
func (d *DecodedToken) Family() (Family, error) {
	alg, _ := d.Header["alg"].(string)
	if alg == "" || strings.EqualFold(alg, "none") {
		return "", ErrAlgorithmNone
	}
	if strings.HasPrefix(alg, "HS") {
		return FamilySymmetric, nil
	}
	return FamilyAsymmetric, nil
}

// Managed claims cannot be supplied through the payload.
var reservedClaims = map[string]struct{}{
	"jti": {},
	"iss": {},
	"iat": {},
	"exp": {},
	"nbf": {},
}

// Sign creates a token carrying payload plus the managed claims, signed
// under cred's family. A fresh secure-random token id is embedded on every
// call and returned alongside the token. expirationSeconds <= 0 issues a
// token with no expiry claim.
func (m *Manager) Sign(cred Credential, payload map[string]any, expirationSeconds int) (string, string, error) {
	if cred == nil {
		return "", "", ErrKeyMaterial
	}

	jti, err := internal.NewTokenID()
	if err != nil {
		return "", "", fmt.Errorf("token id generation: %w", err)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"jti": jti,
		"iss": m.config.Issuer,
		"iat": jwt.NewNumericDate(now),
	}
	for key, value := range payload {
		if _, reserved := reservedClaims[key]; reserved {
			return "", "", fmt.Errorf("%w: %q", ErrReservedClaim, key)
		}
		claims[key] = value
	}
	if expirationSeconds > 0 {
		claims["exp"] = jwt.NewNumericDate(now.Add(time.Duration(expirationSeconds) * time.Second))
	}

	token := jwt.NewWithClaims(signingMethod(cred), claims)

	signKey, err := signKeyFor(cred)
	if err != nil {
		return "", "", err
	}

	signed, err := token.SignedString(signKey)
	if err != nil {
		return "", "", fmt.Errorf("signing: %w", err)
	}

	return signed, jti, nil
}

// Verify cryptographically validates the token's signature and time-based
// claims against cred. The accepted algorithm set is restricted to cred's
// family, so a symmetric token never verifies against an asymmetric
// credential or vice versa.
func (m *Manager) Verify(tokenStr string, cred Credential) (Claims, error) {
	if cred == nil {
		return nil, ErrKeyMaterial
	}

	method := signingMethod(cred)
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithIssuer(m.config.Issuer),
	}
	if m.config.Leeway > 0 {
		options = append(options, jwt.WithLeeway(m.config.Leeway))
	}

	parser := jwt.NewParser(options...)
	token, err := parser.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != method.Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return verifyKeyFor(cred)
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrSignatureInvalid
	}

	return Claims(mapClaims), nil
}

// Decode parses the token structure without verifying the signature. It is
// the first stage of the decode-then-dispatch pipeline and must never be
// used to establish trust.
func (m *Manager) Decode(tokenStr string) (*DecodedToken, error) {
	parser := jwt.NewParser()
	token, parts, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenMalformed
	}

	return &DecodedToken{
		Header:    token.Header,
		Claims:    Claims(mapClaims),
		Signature: parts[2],
	}, nil
}

func signingMethod(cred Credential) jwt.SigningMethod {
	switch cred.(type) {
	case Symmetric:
		return jwt.SigningMethodHS256
	default:
		return jwt.SigningMethodRS256
	}
}

func signKeyFor(cred Credential) (interface{}, error) {
	switch c := cred.(type) {
	case Symmetric:
		if len(c.Secret) == 0 {
			return nil, ErrKeyMaterial
		}
		return c.Secret, nil
	case Asymmetric:
		if len(c.PrivateKey) == 0 {
			return nil, ErrKeyMaterial
		}
		if c.Passphrase != "" {
			key, err := jwt.ParseRSAPrivateKeyFromPEMWithPassword(c.PrivateKey, c.Passphrase)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrKeyMaterial, err)
			}
			return key, nil
		}
		key, err := jwt.ParseRSAPrivateKeyFromPEM(c.PrivateKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyMaterial, err)
		}
		return key, nil
	default:
		return nil, ErrKeyMaterial
	}
}

func verifyKeyFor(cred Credential) (interface{}, error) {
	switch c := cred.(type) {
	case Symmetric:
		if len(c.Secret) == 0 {
			return nil, ErrKeyMaterial
		}
		return c.Secret, nil
	case Asymmetric:
		if len(c.PublicKey) == 0 {
			return nil, ErrKeyMaterial
		}
		key, err := jwt.ParseRSAPublicKeyFromPEM(c.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyMaterial, err)
		}
		return key, nil
	default:
		return nil, ErrKeyMaterial
	}
}

// mapParseError collapses golang-jwt error classes onto the package
// sentinels. The distinction is for internal logging only; callers see one
// generic invalid-token outcome at the public boundary.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenNotValidYet), errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return fmt.Errorf("%w: %v", ErrTokenNotYetValid, err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	default:
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}
}
