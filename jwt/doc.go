// Package jwt manages token signing, verification, and structural decoding under the
// two supported signature families, selecting the algorithm from the shape of the
// supplied credential rather than from caller input.
package jwt
