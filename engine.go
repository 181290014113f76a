package goToken

import (
	"context"

	"github.com/rs/zerolog"

	tokenjwt "github.com/MrEthical07/goToken/jwt"
)

// Engine defines a public type used by goToken APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config     Config
	jwtManager *tokenjwt.Manager
	blacklist  *blacklistStore
	keyStore   KeyStore
	logger     zerolog.Logger
	audit      *auditDispatcher
	metrics    *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// Ping verifies reachability of the revocation cache. Intended for
// health-check endpoints in the hosting service.
func (e *Engine) Ping(ctx context.Context) error {
	if e == nil || e.blacklist == nil {
		return ErrEngineNotReady
	}
	return e.blacklist.Ping(ctx)
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) emitAudit(ctx context.Context, eventType string, success bool, tokenID string, family Family, cause error, metadata func() map[string]string) {
	if e == nil || e.audit == nil {
		return
	}

	event := newAuditEvent(eventType, success)
	event.TokenID = tokenID
	event.Family = string(family)
	event.RequestID = requestIDFromContext(ctx)
	if cause != nil {
		event.Error = cause.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	e.audit.Emit(ctx, event)
}

// credentialForSigning resolves the signing credential for the requested
// family. Asymmetric key bytes are read from the key store per issuance.
func (e *Engine) credentialForSigning(family Family) (tokenjwt.Credential, error) {
	switch family {
	case FamilySync:
		return tokenjwt.Symmetric{Secret: e.config.JWT.Secret}, nil
	case FamilyAsync:
		if e.keyStore == nil {
			return nil, ErrKeyMaterialUnavailable
		}
		privateKey, err := e.keyStore.ReadPrivateKey()
		if err != nil {
			e.logger.Error().Err(err).Msg("private key unreadable")
			return nil, ErrKeyMaterialUnavailable
		}
		return tokenjwt.Asymmetric{
			PrivateKey: privateKey,
			Passphrase: e.config.JWT.Passphrase,
		}, nil
	default:
		return nil, ErrUnknownFamily
	}
}

// credentialForVerification resolves the verifying credential for the
// family read out of the token's own header.
func (e *Engine) credentialForVerification(family tokenjwt.Family) (tokenjwt.Credential, error) {
	switch family {
	case tokenjwt.FamilySymmetric:
		return tokenjwt.Symmetric{Secret: e.config.JWT.Secret}, nil
	case tokenjwt.FamilyAsymmetric:
		if e.keyStore == nil {
			return nil, ErrKeyMaterialUnavailable
		}
		publicKey, err := e.keyStore.ReadPublicKey()
		if err != nil {
			e.logger.Error().Err(err).Msg("public key unreadable")
			return nil, ErrKeyMaterialUnavailable
		}
		return tokenjwt.Asymmetric{PublicKey: publicKey}, nil
	default:
		return nil, ErrUnknownFamily
	}
}
