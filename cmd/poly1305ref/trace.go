package main

import (
	"fmt"

	"golang.zx2c4.com/poly1305ref/internal/poly1305"
)

// printState renders a DebugState the way monocypher.c's
// print_context dumps a crypto_poly1305_ctx: one line per limb group.
func printState(label string, s poly1305.DebugState) {
	fmt.Printf("%s\n", label)
	fmt.Printf("  r:     0x%08x_%08x_%08x_%08x\n", s.R[0], s.R[1], s.R[2], s.R[3])
	fmt.Printf("  h:     0x%08x_%08x_%08x_%08x_%08x\n", s.H[0], s.H[1], s.H[2], s.H[3], s.H[4])
	fmt.Printf("  c:     0x%08x_%08x_%08x_%08x_%08x\n", s.C[0], s.C[1], s.C[2], s.C[3], s.C[4])
	fmt.Printf("  s:     0x%08x_%08x_%08x_%08x\n", s.S[0], s.S[1], s.S[2], s.S[3])
	fmt.Printf("  c_idx: %d\n", s.CIdx)
}

// tracedWrite feeds msg through ctx in 16-byte steps and, when
// traceEnabled, prints the state after each step. Because Write keeps
// its own residue across calls, a step boundary here does not always
// land exactly on a poly_block call (it can land mid-chunk if an
// earlier step left a partial block buffered); it is close enough for
// a human-readable trace, not a cycle-accurate one.
func tracedWrite(ctx *poly1305.Context, msg []byte) {
	if !traceEnabled {
		ctx.Write(msg)
		return
	}
	for len(msg) > 0 {
		n := 16
		if n > len(msg) {
			n = len(msg)
		}
		ctx.Write(msg[:n])
		msg = msg[n:]
		printState("after poly_block", ctx.DebugState())
	}
}
