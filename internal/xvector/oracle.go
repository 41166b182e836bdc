// Package xvector holds test-vector generation helpers that sit
// outside the Poly1305 core: an independent-implementation oracle for
// differential testing, and keystream generators for building
// AEAD-shaped vectors. None of this package contributes cryptographic
// logic to internal/poly1305 — it is glue for the CLI and for this
// repository's own tests, adapted from an earlier benchmarking
// harness's scaffolding for generating and cross-checking test vectors.
package xvector

import (
	"bytes"

	"golang.org/x/crypto/poly1305"
)

// Oracle computes the Poly1305 tag of (key, msg) using the
// battle-tested golang.org/x/crypto/poly1305 implementation,
// independent of internal/poly1305's from-scratch 32-bit-limb model.
func Oracle(key *[32]byte, msg []byte) [16]byte {
	var tag [16]byte
	poly1305.Sum(&tag, msg, key)
	return tag
}

// Agrees reports whether got — a tag produced by internal/poly1305 —
// matches the oracle's tag for the same (key, msg).
func Agrees(got [16]byte, key *[32]byte, msg []byte) bool {
	want := Oracle(key, msg)
	return bytes.Equal(got[:], want[:])
}
