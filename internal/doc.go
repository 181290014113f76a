// Package internal contains helper utilities that are intentionally private to goToken,
// currently secure random generation for token identifiers and bootstrap secrets.
//
// # What this package must NOT do
//
//   - Export types that appear in the public goToken API.
//   - Be imported by any package outside the goToken module.
package internal
