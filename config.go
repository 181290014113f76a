package goToken

import (
	"errors"
	"time"
)

// Config defines a public type used by goToken APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	JWT       JWTConfig
	Blacklist BlacklistConfig
	Audit     AuditConfig
	Metrics   MetricsConfig
}

/*
====================================
JWT CONFIG
====================================
*/

// JWTConfig defines a public type used by goToken APIs.
//
// JWTConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type JWTConfig struct {
	// Issuer is stamped into every issued token and checked on verify.
	Issuer string
	// Secret is the shared secret for the sync family.
	Secret []byte
	// Passphrase decrypts the async private key when the PEM is encrypted.
	Passphrase string
	// Leeway tolerates clock skew on time-based claims. Max 2 minutes.
	Leeway time.Duration
}

/*
====================================
BLACKLIST CONFIG
====================================
*/

// BlacklistConfig defines a public type used by goToken APIs.
//
// BlacklistConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type BlacklistConfig struct {
	// RedisPrefix namespaces revocation keys. Default "blacklistedToken".
	RedisPrefix string
	// SafetyMargin pads each entry's TTL beyond the token's remaining
	// lifetime so the entry never expires first. Floor 10 seconds.
	SafetyMargin time.Duration
	// NoExpiryEntryTTL bounds entries for tokens that carry no expiry
	// claim. Zero keeps such entries until explicit cleanup.
	NoExpiryEntryTTL time.Duration
	// OpTimeout bounds every cache round-trip so an outage fails fast.
	OpTimeout time.Duration
}

// AuditConfig defines a public type used by goToken APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goToken APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

const (
	defaultBlacklistPrefix = "blacklistedToken"
	minSafetyMargin        = 10 * time.Second
	defaultOpTimeout       = 2 * time.Second
	defaultAuditBuffer     = 256
)

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

func defaultConfig() Config {
	return Config{
		JWT: JWTConfig{
			Issuer: "goToken",
			Leeway: 0,
		},
		Blacklist: BlacklistConfig{
			RedisPrefix:  defaultBlacklistPrefix,
			SafetyMargin: minSafetyMargin,
			OpTimeout:    defaultOpTimeout,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: defaultAuditBuffer,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.JWT.Secret != nil {
		out.JWT.Secret = make([]byte, len(cfg.JWT.Secret))
		copy(out.JWT.Secret, cfg.JWT.Secret)
	}
	return out
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if c.JWT.Issuer == "" {
		return errors.New("JWT.Issuer required")
	}
	if len(c.JWT.Secret) == 0 {
		return errors.New("JWT.Secret required")
	}
	if len(c.JWT.Secret) < 32 {
		return errors.New("JWT.Secret must be at least 32 bytes")
	}
	if c.JWT.Leeway < 0 || c.JWT.Leeway > 2*time.Minute {
		return errors.New("invalid JWT.Leeway configuration")
	}
	if c.Blacklist.RedisPrefix == "" {
		return errors.New("Blacklist.RedisPrefix required")
	}
	if c.Blacklist.SafetyMargin < minSafetyMargin {
		return errors.New("Blacklist.SafetyMargin below 10s floor")
	}
	if c.Blacklist.NoExpiryEntryTTL < 0 {
		return errors.New("invalid Blacklist.NoExpiryEntryTTL configuration")
	}
	if c.Blacklist.OpTimeout <= 0 {
		return errors.New("Blacklist.OpTimeout must be positive")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("invalid Audit.BufferSize configuration")
	}
	return nil
}
