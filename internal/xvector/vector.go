package xvector

import (
	"fmt"

	"golang.zx2c4.com/poly1305ref/internal/poly1305"
)

// AEADVector is one ChaCha20-Poly1305-shaped test vector: a keystream
// encrypts plaintext, and a Poly1305 tag under the same 32-byte key
// authenticates the ciphertext. This mirrors RFC
// 8439's AEAD construction closely enough to exercise both the
// keystream generator and internal/poly1305 together, without this
// package (or the core) implementing AEAD framing, associated data,
// or decryption — that is out of scope for both the core and this
// harness.
//
// The Poly1305 key reused here is the raw 32-byte AEAD key rather than
// RFC 8439's per-nonce keystream-block-zero derivation — a
// simplification appropriate for a harness that exists to exercise
// the keystream and MAC primitives together, not to reproduce the
// full AEAD construction.
type AEADVector struct {
	Ciphertext []byte
	Tag        [16]byte
}

// BuildVector produces an AEADVector for plaintext under key and
// nonce. When variant is true, the 24-round/16-byte-nonce experimental
// keystream is used instead of the RFC 8439 standard one; the nonce
// must be 16 bytes long in that case and 12 bytes otherwise.
func BuildVector(key *[32]byte, nonce []byte, counter uint32, plaintext []byte, variant bool) (AEADVector, error) {
	ciphertext := make([]byte, len(plaintext))

	switch {
	case variant:
		if len(nonce) != 16 {
			return AEADVector{}, fmt.Errorf("xvector: experimental variant requires a 16-byte nonce, got %d", len(nonce))
		}
		var n16 [16]byte
		copy(n16[:], nonce)
		ks := make([]byte, len(plaintext))
		ExperimentalKeystream(key, &n16, counter, ks)
		for i := range plaintext {
			ciphertext[i] = plaintext[i] ^ ks[i]
		}
	default:
		if len(nonce) != 12 {
			return AEADVector{}, fmt.Errorf("xvector: standard keystream requires a 12-byte nonce, got %d", len(nonce))
		}
		var n12 [12]byte
		copy(n12[:], nonce)
		ks := make([]byte, len(plaintext))
		if err := StandardKeystream(key, &n12, counter, ks); err != nil {
			return AEADVector{}, err
		}
		for i := range plaintext {
			ciphertext[i] = plaintext[i] ^ ks[i]
		}
	}

	var macKey [32]byte
	copy(macKey[:], key[:])
	var tag [16]byte
	poly1305Sum(&tag, ciphertext, &macKey)

	return AEADVector{Ciphertext: ciphertext, Tag: tag}, nil
}

// poly1305Sum is a thin indirection to internal/poly1305.Sum, kept
// separate so the import is easy to spot as the one place this
// package's vector builder touches the core.
func poly1305Sum(mac *[16]byte, msg []byte, key *[32]byte) {
	poly1305.Sum(mac, msg, key)
}
