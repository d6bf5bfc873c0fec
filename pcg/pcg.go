// Package pcg implements the PCG family of pseudorandom number
// generators: a linear congruential core behind small output
// permutations that fold the state into well-distributed half-width
// words. See http://www.pcg-random.org/ for the underlying design.
//
// Three engines cover the classic reference set: PCG32 (xsh-rr,
// 64-bit state, 32-bit output), PCG32RS (xsh-rs, 64/32) and PCG64
// (xsl-rr, 128-bit state, 64-bit output). Each comes in a
// fixed-stream flavor and a derived-stream flavor selected by the
// constructor. Engines are plain value state and are not safe for
// concurrent use; give every goroutine its own engine, on its own
// stream if the sequences must be independent.
package pcg

import "math/bits"

// Shared multipliers and fixed-stream increments of the reference
// parameterization. The 128-bit increment is the 64-bit pair glued
// together.
const (
	mult64 = 6364136223846793005
	inc64  = 1442695040888963407

	mult128Hi = 2549297995355413924
	mult128Lo = 4865540595714422341
	inc128Hi  = 6364136223846793005
	inc128Lo  = 1442695040888963407
)

// xshRR folds the high state bits over the low ones, then rotates the
// folded word right by the top five state bits.
func xshRR(s uint64) uint32 {
	return bits.RotateLeft32(uint32((s^(s>>18))>>27), -int(s>>59))
}

// xshRS shifts the folded word right by a variable amount selected by
// the top three state bits.
func xshRS(s uint64) uint32 {
	return uint32((s ^ (s >> 22)) >> (22 + (s >> 61)))
}

// xslRR xors the state halves and rotates right by the top six state
// bits.
func xslRR(s Uint128) uint64 {
	return bits.RotateLeft64(s.Hi^s.Lo, -int(s.Hi>>58))
}
