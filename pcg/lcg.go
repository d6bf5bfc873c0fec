package pcg

// lcg64 is the W=64 congruential core shared by the 32-bit engines.
// The increment is set once at construction and stays odd for the
// life of the engine.
type lcg64 struct {
	state uint64
	inc   uint64
}

func (g *lcg64) advance() {
	g.state = g.state*mult64 + g.inc
}

// Seed re-initializes the engine on its existing stream. The state is
// primed, the seed folded in, and the state primed again, so every
// seed value (zero included) lands on a well-mixed state.
func (g *lcg64) Seed(seed uint64) {
	g.state = 0
	g.advance()
	g.state += seed
	g.advance()
}

var multiplier128 = Uint128{mult128Hi, mult128Lo}

// lcg128 is the W=128 congruential core behind PCG64.
type lcg128 struct {
	state Uint128
	inc   Uint128
}

func (g *lcg128) advance() {
	g.state = g.state.mul(multiplier128).add(g.inc)
}

// Seed re-initializes the engine on its existing stream, priming the
// state around the seed exactly like the 64-bit core.
func (g *lcg128) Seed(seed uint64) {
	g.state = Uint128{}
	g.advance()
	g.state = g.state.addUint64(seed)
	g.advance()
}

// Seed128 is Seed with a full-width seed value.
func (g *lcg128) Seed128(seed Uint128) {
	g.state = Uint128{}
	g.advance()
	g.state = g.state.add(seed)
	g.advance()
}
