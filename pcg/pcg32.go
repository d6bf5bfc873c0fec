package pcg

// PCG32 is the xsh-rr engine: 64-bit state, 32-bit output words.
type PCG32 struct {
	lcg64
}

const pcg32Magic = "pcg32:"

// NewPCG32 creates a fixed-stream PCG32. Every fixed-stream PCG32
// walks the same logical stream, merely starting elsewhere on it.
func NewPCG32(seed uint64) *PCG32 {
	g := &PCG32{lcg64{inc: inc64}}
	g.Seed(seed)
	return g
}

// NewPCG32Seq creates a derived-stream PCG32 on the stream selected
// by seq. Distinct selectors yield independent sequences.
func NewPCG32Seq(seed, seq uint64) *PCG32 {
	g := &PCG32{lcg64{inc: seq<<1 | 1}}
	g.Seed(seed)
	return g
}

// Uint32 returns the word for the current position, then steps the
// engine. The word is always computed from the pre-step state.
func (g *PCG32) Uint32() uint32 {
	s := g.state
	g.advance()
	return xshRR(s)
}

// Bounded returns an unbiased uniform value in [0,bound) by rejection
// below the wraparound threshold. Bound 0 yields 0.
func (g *PCG32) Bounded(bound uint32) uint32 {
	if bound == 0 {
		return 0
	}
	threshold := -bound % bound
	for {
		r := g.Uint32()
		if r >= threshold {
			return r % bound
		}
	}
}

// FastBounded returns a uniform value in [0,bound) using the
// multiply-shift reduction from
// https://lemire.me/blog/2016/06/30/fast-random-shuffling/
func (g *PCG32) FastBounded(bound uint32) uint32 {
	x := g.Uint32()
	m := uint64(x) * uint64(bound)
	l := uint32(m)
	if l < bound {
		t := -bound % bound
		for l < t {
			x = g.Uint32()
			m = uint64(x) * uint64(bound)
			l = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// Float64 returns a uniform float in [0,1) built from 53 bits of two
// output words, first word high.
func (g *PCG32) Float64() float64 {
	v := uint64(g.Uint32())<<32 | uint64(g.Uint32())
	return float64(v>>11) / (1 << 53)
}

// MarshalBinary encodes the full engine state as a small binary token.
func (g *PCG32) MarshalBinary() ([]byte, error) {
	return marshal64(pcg32Magic, &g.lcg64), nil
}

// UnmarshalBinary restores an engine encoded by MarshalBinary.
func (g *PCG32) UnmarshalBinary(data []byte) error {
	return unmarshal64(pcg32Magic, data, &g.lcg64)
}
