package pcg

import "math/bits"

// PCG64 is the xsl-rr engine: 128-bit state, 64-bit output words.
type PCG64 struct {
	lcg128
}

const pcg64Magic = "pcg64:"

var increment128 = Uint128{inc128Hi, inc128Lo}

// NewPCG64 creates a fixed-stream PCG64.
func NewPCG64(seed uint64) *PCG64 {
	g := &PCG64{lcg128{inc: increment128}}
	g.Seed(seed)
	return g
}

// NewPCG64Seq creates a derived-stream PCG64 on the stream selected
// by seq; seed and seq are zero-extended to the state width.
func NewPCG64Seq(seed, seq uint64) *PCG64 {
	g := &PCG64{lcg128{inc: Uint128{seq >> 63, seq<<1 | 1}}}
	g.Seed(seed)
	return g
}

// NewPCG64Seq128 is NewPCG64Seq with full-width seed and selector.
func NewPCG64Seq128(seed, seq Uint128) *PCG64 {
	g := &PCG64{lcg128{inc: seq.shl1or1()}}
	g.Seed128(seed)
	return g
}

// Uint64 steps the engine and returns the word for the new position.
// Unlike the 64-bit engines the word is computed from the post-step
// state; this is the defined order of the reference 128-bit engines
// and the published sequences depend on it.
func (g *PCG64) Uint64() uint64 {
	g.advance()
	return xslRR(g.state)
}

// Bounded returns an unbiased uniform value in [0,bound) by rejection
// below the wraparound threshold. Bound 0 yields 0.
func (g *PCG64) Bounded(bound uint64) uint64 {
	if bound == 0 {
		return 0
	}
	threshold := -bound % bound
	for {
		r := g.Uint64()
		if r >= threshold {
			return r % bound
		}
	}
}

// FastBounded returns a uniform value in [0,bound) using the Lemire
// multiply-shift reduction over a 128-bit product.
func (g *PCG64) FastBounded(bound uint64) uint64 {
	hi, lo := bits.Mul64(g.Uint64(), bound)
	if lo < bound {
		t := -bound % bound
		for lo < t {
			hi, lo = bits.Mul64(g.Uint64(), bound)
		}
	}
	return hi
}

// Float64 returns a uniform float in [0,1) from the top 53 bits of
// one output word.
func (g *PCG64) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// MarshalBinary encodes the full engine state as a small binary token.
func (g *PCG64) MarshalBinary() ([]byte, error) {
	return marshal128(pcg64Magic, &g.lcg128), nil
}

// UnmarshalBinary restores an engine encoded by MarshalBinary.
func (g *PCG64) UnmarshalBinary(data []byte) error {
	return unmarshal128(pcg64Magic, data, &g.lcg128)
}
