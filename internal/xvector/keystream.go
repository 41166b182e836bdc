package xvector

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// StandardKeystream fills out with RFC 8439 ChaCha20 keystream bytes
// (20 rounds, 12-byte nonce), using golang.org/x/crypto/chacha20 —
// the same keystream construction Poly1305 is paired with in the AEAD
// this repository's core is one component of.
func StandardKeystream(key *[32]byte, nonce *[12]byte, counter uint32, out []byte) error {
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		return fmt.Errorf("xvector: chacha20 init: %w", err)
	}
	c.SetCounter(counter)
	zero := make([]byte, len(out))
	c.XORKeyStream(out, zero)
	return nil
}

// experimentalQuarterRound is not RFC 8439's quarter round: the
// rotation distances (10, 14, 6, 9 instead of 16, 12, 8, 7) and the
// extra x[d]++ after the first rotation are deliberate deviations
// carried over from an earlier benchmarking variant of this keystream.
// Do not use this where interoperability with standard ChaCha20 matters.
func experimentalQuarterRound(x *[16]uint32, a, b, c, d int) {
	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = (x[d] << 10) | (x[d] >> (32 - 10))
	x[d] += 1

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = (x[b] << 14) | (x[b] >> (32 - 14))

	x[a] += x[b]
	x[d] ^= x[a]
	x[d] = (x[d] << 6) | (x[d] >> (32 - 6))

	x[c] += x[d]
	x[b] ^= x[c]
	x[b] = (x[b] << 9) | (x[b] >> (32 - 9))
}

// experimentalBlock produces one 64-byte keystream block using 24
// rounds, a 16-byte nonce, and experimentalQuarterRound instead of
// RFC 8439's 20 rounds, 12-byte nonce, and standard quarter round.
// Retained as an opt-in variant for test-vector diversity: this has no
// bearing on the Poly1305 core and must never be used where
// compatibility with RFC 8439 ChaCha20 is required.
func experimentalBlock(key *[32]byte, nonce *[16]byte, counter uint32, out *[64]byte) {
	const rounds = 24
	var x [16]uint32
	x[0] = 0x61707865
	x[1] = 0x3320646e
	x[2] = 0x79622d32
	x[3] = 0x6b206574
	for i := 0; i < 8; i++ {
		x[4+i] = binary.LittleEndian.Uint32(key[i*4:])
	}
	for i := 0; i < 4; i++ {
		x[11+i] = binary.LittleEndian.Uint32(nonce[i*4 : i*4+4])
	}
	x[15] = counter

	orig := x
	for i := 0; i < rounds; i += 2 {
		experimentalQuarterRound(&x, 0, 4, 8, 12)
		experimentalQuarterRound(&x, 1, 5, 9, 13)
		experimentalQuarterRound(&x, 2, 6, 10, 14)
		experimentalQuarterRound(&x, 3, 7, 11, 15)
		experimentalQuarterRound(&x, 0, 5, 10, 15)
		experimentalQuarterRound(&x, 1, 6, 11, 12)
		experimentalQuarterRound(&x, 2, 7, 8, 13)
		experimentalQuarterRound(&x, 3, 4, 9, 14)
	}
	for i := 0; i < 16; i++ {
		x[i] += orig[i]
		binary.LittleEndian.PutUint32(out[i*4:], x[i])
	}
}

// ExperimentalKeystream fills all of out with the
// 24-round/16-byte-nonce variant keystream, counting up from
// counter. It is XORed against the zero string, i.e. it returns raw
// keystream rather than ciphertext, mirroring StandardKeystream.
func ExperimentalKeystream(key *[32]byte, nonce *[16]byte, counter uint32, out []byte) {
	var block [64]byte
	for i := 0; i < len(out); i += 64 {
		experimentalBlock(key, nonce, counter, &block)
		copy(out[i:], block[:])
		counter++
	}
}
