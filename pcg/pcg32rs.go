package pcg

// PCG32RS is the xsh-rs engine: 64-bit state, 32-bit output words.
// The variable-shift permutation trades a little statistical polish
// for one cheaper operation compared to PCG32.
type PCG32RS struct {
	lcg64
}

const pcg32rsMagic = "pcg32rs:"

// NewPCG32RS creates a fixed-stream PCG32RS.
func NewPCG32RS(seed uint64) *PCG32RS {
	g := &PCG32RS{lcg64{inc: inc64}}
	g.Seed(seed)
	return g
}

// NewPCG32RSSeq creates a derived-stream PCG32RS on the stream
// selected by seq.
func NewPCG32RSSeq(seed, seq uint64) *PCG32RS {
	g := &PCG32RS{lcg64{inc: seq<<1 | 1}}
	g.Seed(seed)
	return g
}

// Uint32 returns the word for the current position, then steps the
// engine. The word is always computed from the pre-step state.
func (g *PCG32RS) Uint32() uint32 {
	s := g.state
	g.advance()
	return xshRS(s)
}

// Bounded returns an unbiased uniform value in [0,bound) by rejection
// below the wraparound threshold. Bound 0 yields 0.
func (g *PCG32RS) Bounded(bound uint32) uint32 {
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

// FastBounded returns a uniform value in [0,bound) using the Lemire
// multiply-shift reduction.
func (g *PCG32RS) FastBounded(bound uint32) uint32 {
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
func (g *PCG32RS) Float64() float64 {
	v := uint64(g.Uint32())<<32 | uint64(g.Uint32())
	return float64(v>>11) / (1 << 53)
}

// MarshalBinary encodes the full engine state as a small binary token.
func (g *PCG32RS) MarshalBinary() ([]byte, error) {
	return marshal64(pcg32rsMagic, &g.lcg64), nil
}

// UnmarshalBinary restores an engine encoded by MarshalBinary.
func (g *PCG32RS) UnmarshalBinary(data []byte) error {
	return unmarshal64(pcg32rsMagic, data, &g.lcg64)
}
