// Package goToken issues, verifies, and revokes signed bearer tokens under two
// signature families (shared-secret HMAC and RSA key pairs), backed by a
// Redis revocation blacklist whose entry lifetimes stay aligned with token
// expiry.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goToken is the public surface. It exposes [Engine], [Builder], [Config], the
// [KeyStore] implementations, and the caller-facing result types. Signing
// mechanics live in the jwt sub-package; random id generation under internal/.
// HTTP routing, credential storage, and relational persistence are the hosting
// service's problem.
//
// # What this package must NOT do
//
//   - Expose Redis clients or blacklist key layout in its public API.
//   - Trust a caller-supplied algorithm flag: verification always classifies a
//     token by the algorithm tag in its own header (decode, then dispatch).
//   - Let a revoked token pass verification, even during a cache outage — the
//     revocation check fails closed.
//
// # Performance contract
//
// VerifyToken is the hot path. It costs one structural parse, one signature
// verification, and exactly one Redis round-trip (the revocation lookup),
// bounded by [BlacklistConfig.OpTimeout].
package goToken
