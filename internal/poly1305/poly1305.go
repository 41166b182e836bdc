// Package poly1305 is a from-scratch, 32-bit-limb model of the Poly1305
// one-time message-authentication code defined in RFC 8439 §2.5.
//
// The limb layout and the shape of poly_block mirror a hardware datapath:
// five 32-bit limbs, 64-bit scratch products, and a branchless final
// reduction. Do not replace the limb arithmetic with math/big or a
// wider native integer type — the bounds between operations are part
// of the contract this package exists to pin down.
package poly1305

import "runtime"

// TagSize is the length in bytes of a Poly1305 authentication tag.
const TagSize = 16

// KeySize is the length in bytes of a Poly1305 one-time key.
const KeySize = 32

// Context is the incremental Poly1305 state machine. It is a
// single-owner value: create it with Init, feed it with any number of
// Write calls, and consume it exactly once with Sum. A Context must
// not be reused after Sum, and concurrent calls into the same Context
// are undefined.
type Context struct {
	r    [4]uint32 // clamped multiplier, immutable after Init
	h    [5]uint32 // accumulator, h < 2^130 * 5
	c    [5]uint32 // current chunk; c[4] is the terminator limb
	s    [4]uint32 // one-time pad, added once at Sum
	cIdx int       // bytes filled in c, in [0, 16]
}

// state is a read-only snapshot of a Context, used by this package's
// own white-box tests.
type state struct {
	R    [4]uint32
	H    [5]uint32
	C    [5]uint32
	S    [4]uint32
	CIdx int
}

func (ctx *Context) snapshot() state {
	return state{R: ctx.r, H: ctx.h, C: ctx.c, S: ctx.s, CIdx: ctx.cIdx}
}

// DebugState is a point-in-time copy of a Context's internal limbs.
// It exists for external diagnostic tooling — the command-line
// driver's --trace state-dump formatter, in the spirit of the
// reference model's print_context — and changes to it never feed
// back into the Context it was copied from. The core itself never
// calls DebugState and performs no I/O; this accessor is read-only
// and pure.
type DebugState struct {
	R    [4]uint32
	H    [5]uint32
	C    [5]uint32
	S    [4]uint32
	CIdx int
}

// DebugState returns a snapshot of ctx's internal state.
func (ctx *Context) DebugState() DebugState {
	s := ctx.snapshot()
	return DebugState(s)
}

func load32le(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func store32le(out []byte, v uint32) {
	_ = out[3]
	out[0] = byte(v)
	out[1] = byte(v >> 8)
	out[2] = byte(v >> 16)
	out[3] = byte(v >> 24)
}

// wipe zeroes every limb of b and calls runtime.KeepAlive afterward so
// the zeroing writes cannot be proven dead and elided by the compiler
// even though b is otherwise unused from this point on.
func wipe(b []uint32) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// Init clamps r, captures s, and arms a fresh Context for streaming.
// After Init returns, h is zero, c is empty with its terminator limb
// set, and r/s hold the clamped key material.
func (ctx *Context) Init(key *[KeySize]byte) {
	ctx.h = [5]uint32{}
	ctx.c[4] = 1
	ctx.clearChunk()

	ctx.r[0] = load32le(key[0:4]) & 0x0fffffff
	ctx.r[1] = load32le(key[4:8]) & 0x0ffffffc
	ctx.r[2] = load32le(key[8:12]) & 0x0ffffffc
	ctx.r[3] = load32le(key[12:16]) & 0x0ffffffc

	ctx.s[0] = load32le(key[16:20])
	ctx.s[1] = load32le(key[20:24])
	ctx.s[2] = load32le(key[24:28])
	ctx.s[3] = load32le(key[28:32])
}

// clearChunk zeroes c[0..3] and resets the fill index. It deliberately
// leaves c[4] untouched: the terminator bit stays 1 across blocks
// until Sum explicitly clears it for a short final chunk.
func (ctx *Context) clearChunk() {
	ctx.c[0] = 0
	ctx.c[1] = 0
	ctx.c[2] = 0
	ctx.c[3] = 0
	ctx.cIdx = 0
}

// takeInput places one byte of the chunk at position cIdx and
// advances cIdx. The caller must ensure cIdx < 16.
func (ctx *Context) takeInput(b byte) {
	word := ctx.cIdx >> 2
	shift := uint(ctx.cIdx&3) * 8
	ctx.c[word] |= uint32(b) << shift
	ctx.cIdx++
}

// block evaluates h <- (h + c) * r mod (2^130 - 5) in place.
//
// Preconditions: r is clamped, h <= 4_ffffffff_ffffffff_ffffffff_ffffffff,
// c <= 1_ffffffff_ffffffff_ffffffff_ffffffff (i.e. c[4] in {0,1}).
// Postcondition: h[4] <= 4.
func (ctx *Context) block() {
	// s = h + c, without carry propagation.
	s0 := uint64(ctx.h[0]) + uint64(ctx.c[0]) // <= 1_fffffffe
	s1 := uint64(ctx.h[1]) + uint64(ctx.c[1]) // <= 1_fffffffe
	s2 := uint64(ctx.h[2]) + uint64(ctx.c[2]) // <= 1_fffffffe
	s3 := uint64(ctx.h[3]) + uint64(ctx.c[3]) // <= 1_fffffffe
	s4 := ctx.h[4] + ctx.c[4]                 // <= 5

	r0 := ctx.r[0] // <= 0fffffff
	r1 := ctx.r[1] // <= 0ffffffc
	r2 := ctx.r[2] // <= 0ffffffc
	r3 := ctx.r[3] // <= 0ffffffc

	rr0 := (r0 >> 2) * 5  // <= 13fffffb
	rr1 := (r1 >> 2) + r1 // == (r1 >> 2) * 5
	rr2 := (r2 >> 2) + r2 // == (r2 >> 2) * 5
	rr3 := (r3 >> 2) + r3 // == (r3 >> 2) * 5

	// (h + c) * r, without intermediate carry propagation.
	x0 := s0*uint64(r0) + s1*uint64(rr3) + s2*uint64(rr2) + s3*uint64(rr1) + uint64(s4)*uint64(rr0)
	x1 := s0*uint64(r1) + s1*uint64(r0) + s2*uint64(rr3) + s3*uint64(rr2) + uint64(s4)*uint64(rr1)
	x2 := s0*uint64(r2) + s1*uint64(r1) + s2*uint64(r0) + s3*uint64(rr3) + uint64(s4)*uint64(rr2)
	x3 := s0*uint64(r3) + s1*uint64(r2) + s2*uint64(r1) + s3*uint64(r0) + uint64(s4)*uint64(rr3)
	x4 := s4 * (r0 & 3) // recovers the 2 bits rr0 lost to >>2

	// Partial reduction modulo 2^130 - 5.
	u5 := x4 + uint32(x3>>32)
	u0 := uint64(u5>>2)*5 + (x0 & 0xffffffff)
	u1 := (u0 >> 32) + (x1 & 0xffffffff) + (x0 >> 32)
	u2 := (u1 >> 32) + (x2 & 0xffffffff) + (x1 >> 32)
	u3 := (u2 >> 32) + (x3 & 0xffffffff) + (x2 >> 32)
	u4 := (u3 >> 32) + uint64(u5&3)

	ctx.h[0] = uint32(u0)
	ctx.h[1] = uint32(u1)
	ctx.h[2] = uint32(u2)
	ctx.h[3] = uint32(u3)
	ctx.h[4] = uint32(u4)
}

// updateBytes absorbs n bytes one at a time, running block/clearChunk
// whenever a full 16-byte chunk accumulates. No block is ever run on a
// partial chunk from this path.
func (ctx *Context) updateBytes(msg []byte) {
	for _, b := range msg {
		ctx.takeInput(b)
		if ctx.cIdx == 16 {
			ctx.block()
			ctx.clearChunk()
		}
	}
}

// Write absorbs message bytes into the running hash. It composes
// associatively over the concatenation of all bytes written so far:
// any split of a message across Write calls produces the same tag as
// one Write of the whole message. Write never fails; it satisfies
// io.Writer's signature purely for composability with byte sources.
func (ctx *Context) Write(msg []byte) (int, error) {
	n := len(msg)

	// Head alignment: finish the chunk already in progress, if any.
	align := (16 - (ctx.cIdx & 15)) & 15
	if align > len(msg) {
		align = len(msg)
	}
	ctx.updateBytes(msg[:align])
	msg = msg[align:]

	// Bulk middle: whole 16-byte blocks loaded directly into c[0..3].
	var nBlocks int
	for len(msg) >= 16 {
		ctx.c[0] = load32le(msg[0:4])
		ctx.c[1] = load32le(msg[4:8])
		ctx.c[2] = load32le(msg[8:12])
		ctx.c[3] = load32le(msg[12:16])
		ctx.block()
		msg = msg[16:]
		nBlocks++
	}
	if nBlocks > 0 {
		ctx.clearChunk()
	}

	// Tail: residue shorter than one block, buffered for next time.
	ctx.updateBytes(msg)

	return n, nil
}

// Sum pads any residue, applies the final mod-p reduction, adds the
// one-time pad s, writes the 16-byte tag to mac, and wipes the
// Context. It must not be called twice on the same Context.
func (ctx *Context) Sum(mac *[TagSize]byte) {
	if ctx.cIdx != 0 {
		// The residue is shorter than a full block, so its implicit
		// terminator is 2^(8*cIdx), not 2^130: clear c[4] before
		// placing the padding byte 0x01 at the active position.
		ctx.c[4] = 0
		ctx.takeInput(1)
		ctx.block()
	}

	// u4 in [0,5]; u4>>2 is 1 iff h >= 2^130-5 and a subtraction of p
	// is required.
	u0 := uint64(5) + uint64(ctx.h[0])
	u1 := (u0 >> 32) + uint64(ctx.h[1])
	u2 := (u1 >> 32) + uint64(ctx.h[2])
	u3 := (u2 >> 32) + uint64(ctx.h[3])
	u4 := (u3 >> 32) + uint64(ctx.h[4])

	// Add s, folding in the conditional subtraction of p branchlessly.
	uu0 := (u4>>2)*5 + uint64(ctx.h[0]) + uint64(ctx.s[0])
	uu1 := (uu0 >> 32) + uint64(ctx.h[1]) + uint64(ctx.s[1])
	uu2 := (uu1 >> 32) + uint64(ctx.h[2]) + uint64(ctx.s[2])
	uu3 := (uu2 >> 32) + uint64(ctx.h[3]) + uint64(ctx.s[3])

	store32le(mac[0:4], uint32(uu0))
	store32le(mac[4:8], uint32(uu1))
	store32le(mac[8:12], uint32(uu2))
	store32le(mac[12:16], uint32(uu3))

	ctx.wipe()
}

// wipe zeroes every field of the Context so key material and
// accumulator state do not linger in memory after Sum returns.
func (ctx *Context) wipe() {
	wipe(ctx.r[:])
	wipe(ctx.h[:])
	wipe(ctx.c[:])
	wipe(ctx.s[:])
	ctx.cIdx = 0
}

// Sum computes the one-shot Poly1305 tag of msg under key, equivalent
// to Init followed by one Write and Sum on the incremental interface.
func Sum(mac *[TagSize]byte, msg []byte, key *[KeySize]byte) {
	var ctx Context
	ctx.Init(key)
	ctx.Write(msg)
	ctx.Sum(mac)
}
