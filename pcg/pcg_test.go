package pcg

import (
	"errors"
	"testing"
)

func TestSeedMixing(t *testing.T) {
	// Zero seed must not land on zero state.
	if g := NewPCG32(0); g.state == 0 {
		t.Fatal("zero seed produced zero state")
	}
	if g := NewPCG64(0); g.state == (Uint128{}) {
		t.Fatal("zero seed produced zero 128-bit state")
	}

	// Adjacent seeds diverge immediately.
	if NewPCG32(1).Uint32() == NewPCG32(2).Uint32() {
		t.Fatal("adjacent seeds produced the same first word")
	}
	if NewPCG64(1).Uint64() == NewPCG64(2).Uint64() {
		t.Fatal("adjacent seeds produced the same first word")
	}
}

func TestIncrementStaysOdd(t *testing.T) {
	for _, seq := range []uint64{0, 1, 2, 54, 1<<63 - 1, 1 << 63} {
		if g := NewPCG32Seq(1, seq); g.inc&1 != 1 {
			t.Fatalf("seq %d: even increment %x", seq, g.inc)
		}
		if g := NewPCG32RSSeq(1, seq); g.inc&1 != 1 {
			t.Fatalf("seq %d: even increment %x", seq, g.inc)
		}
		if g := NewPCG64Seq(1, seq); g.inc.Lo&1 != 1 {
			t.Fatalf("seq %d: even increment %x%x", seq, g.inc.Hi, g.inc.Lo)
		}
	}
	if inc64&1 != 1 || inc128Lo&1 != 1 {
		t.Fatal("fixed-stream increment is even")
	}
}

func TestStreamIndependence(t *testing.T) {
	// Same seed on different streams must not track each other.
	a := NewPCG32Seq(99, 1)
	b := NewPCG32Seq(99, 2)
	diverged := false
	for i := 0; i < 8; i++ {
		if a.Uint32() != b.Uint32() {
			diverged = true
		}
	}
	if !diverged {
		t.Fatal("different selectors produced an identical prefix")
	}

	// Same seed, same stream: byte-for-byte identical.
	c := NewPCG64Seq(7, 7)
	d := NewPCG64Seq(7, 7)
	for i := 0; i < 8; i++ {
		if c.Uint64() != d.Uint64() {
			t.Fatalf("identical construction diverged at word %d", i)
		}
	}
}

func TestSelectorTopBit(t *testing.T) {
	// The top selector bit is shifted out of the 64-bit increment, so
	// selectors differing only there share a stream.
	a := NewPCG32Seq(5, 6)
	b := NewPCG32Seq(5, 6|1<<63)
	for i := 0; i < 4; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatal("top-bit selectors should share a stream")
		}
	}

	// The 128-bit engine keeps the bit in the high increment word.
	c := NewPCG64Seq(5, 6)
	d := NewPCG64Seq(5, 6|1<<63)
	same := true
	for i := 0; i < 8; i++ {
		if c.Uint64() != d.Uint64() {
			same = false
		}
	}
	if same {
		t.Fatal("128-bit selectors must not collide on the top bit")
	}
}

func TestFullWidthSeeding(t *testing.T) {
	// Zero-extended full-width construction matches the uint64 one.
	a := NewPCG64Seq(42, 54)
	b := NewPCG64Seq128(U128(0, 42), U128(0, 54))
	for i := 0; i < 16; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("word %d: %016x != %016x", i, x, y)
		}
	}

	// High selector bits select a different stream.
	c := NewPCG64Seq128(U128(0, 42), U128(1, 54))
	diverged := false
	for _, want := range refSetseqXslRR[:8] {
		if c.Uint64() != want {
			diverged = true
		}
	}
	if !diverged {
		t.Fatal("high selector word had no effect")
	}
}

func TestReseed(t *testing.T) {
	// Seed re-runs the seeding procedure on the engine's own stream,
	// so a reseeded engine replays its reference sequence.
	g := NewPCG32Seq(42, 54)
	for i := 0; i < 5; i++ {
		g.Uint32()
	}
	g.Seed(42)
	for i, want := range refSetseqXshRR[:8] {
		if got := g.Uint32(); got != want {
			t.Fatalf("word %d after reseed: got %08x, want %08x", i, got, want)
		}
	}

	h := NewPCG64Seq(42, 54)
	h.Uint64()
	h.Seed(42)
	if got := h.Uint64(); got != refSetseqXslRR[0] {
		t.Fatalf("first word after reseed: got %016x, want %016x", got, refSetseqXslRR[0])
	}
}

// TestReducedWidthPeriod spot-checks the maximal-period property of
// the recurrence on a 16-bit mask, where walking the whole cycle is
// cheap. The low bits of the production constants keep the required
// parity properties under masking.
func TestReducedWidthPeriod(t *testing.T) {
	const mask = 0xffff
	const mult = mult64 & mask
	const inc = inc64 & mask

	start := uint64(0x1234)
	s := start
	steps := 0
	for {
		s = (s*mult + inc) & mask
		steps++
		if s == start {
			break
		}
		if steps > 1<<16 {
			t.Fatal("no return to start state within the full period")
		}
	}
	if steps != 1<<16 {
		t.Fatalf("period = %d, want %d", steps, 1<<16)
	}
}

func TestOutputWidthContainment(t *testing.T) {
	for _, v := range []Variant{SetseqXshRR6432, OneseqXshRR6432, SetseqXshRS6432, OneseqXshRS6432} {
		g, err := New(WithVariant(v), WithSeed(3), WithSeq(9))
		if err != nil {
			t.Fatalf("New(%s): %v", v, err)
		}
		if g.OutputBits() != 32 {
			t.Fatalf("%s: OutputBits = %d", v, g.OutputBits())
		}
		for i := 0; i < 64; i++ {
			if w := g.Uint64(); w>>32 != 0 {
				t.Fatalf("%s: stray high bits in %016x", v, w)
			}
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		g, err := New(WithVariant(v), WithSeed(1), WithSeq(2))
		if err != nil {
			t.Fatalf("New(%s): %v", v, err)
		}
		for i := 0; i < 3; i++ {
			g.Uint64()
		}
		tok, err := g.MarshalBinary()
		if err != nil {
			t.Fatalf("%s: marshal: %v", v, err)
		}
		want := make([]uint64, 8)
		for i := range want {
			want[i] = g.Uint64()
		}

		// Restore over an engine sitting elsewhere on another stream.
		h, err := New(WithVariant(v), WithSeed(9), WithSeq(3))
		if err != nil {
			t.Fatalf("New(%s): %v", v, err)
		}
		if err := h.UnmarshalBinary(tok); err != nil {
			t.Fatalf("%s: unmarshal: %v", v, err)
		}
		for i, w := range want {
			if got := h.Uint64(); got != w {
				t.Fatalf("%s: resumed word %d: got %x, want %x", v, i, got, w)
			}
		}
	}
}

func TestUnmarshalRejects(t *testing.T) {
	g := NewPCG32(1)
	tok, err := g.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var h PCG32
	bad := append([]byte(nil), tok...)
	bad[0] = 'q'
	if err := h.UnmarshalBinary(bad); !errors.Is(err, errUnmarshal) {
		t.Fatalf("wrong magic accepted: %v", err)
	}
	if err := h.UnmarshalBinary(tok[:len(tok)-1]); !errors.Is(err, errUnmarshal) {
		t.Fatalf("truncated token accepted: %v", err)
	}
	bad = append([]byte(nil), tok...)
	bad[len(bad)-1] &^= 1 // even increment
	if err := h.UnmarshalBinary(bad); !errors.Is(err, errUnmarshal) {
		t.Fatalf("even increment accepted: %v", err)
	}

	var w PCG64
	if err := w.UnmarshalBinary(tok); !errors.Is(err, errUnmarshal) {
		t.Fatalf("cross-engine token accepted: %v", err)
	}
}

func TestBounded(t *testing.T) {
	g := NewPCG32(7)
	for _, bound := range []uint32{1, 2, 3, 10, 1000, 1 << 31} {
		for i := 0; i < 200; i++ {
			if v := g.Bounded(bound); v >= bound {
				t.Fatalf("Bounded(%d) = %d", bound, v)
			}
			if v := g.FastBounded(bound); v >= bound {
				t.Fatalf("FastBounded(%d) = %d", bound, v)
			}
		}
	}
	if g.Bounded(0) != 0 || g.FastBounded(0) != 0 {
		t.Fatal("bound 0 must yield 0")
	}

	h := NewPCG64(7)
	for _, bound := range []uint64{1, 2, 10, 1000, 1 << 63} {
		for i := 0; i < 200; i++ {
			if v := h.Bounded(bound); v >= bound {
				t.Fatalf("Bounded(%d) = %d", bound, v)
			}
			if v := h.FastBounded(bound); v >= bound {
				t.Fatalf("FastBounded(%d) = %d", bound, v)
			}
		}
	}
	if h.Bounded(0) != 0 || h.FastBounded(0) != 0 {
		t.Fatal("bound 0 must yield 0")
	}
}

func TestFloat64(t *testing.T) {
	g32 := NewPCG32(11)
	grs := NewPCG32RS(11)
	g64 := NewPCG64(11)
	for i := 0; i < 1000; i++ {
		for _, f := range []float64{g32.Float64(), grs.Float64(), g64.Float64()} {
			if f < 0 || f >= 1 {
				t.Fatalf("Float64 out of range: %v", f)
			}
		}
	}
}

var (
	sink32 uint32
	sink64 uint64
)

func BenchmarkPCG32Uint32(b *testing.B) {
	g := NewPCG32(1)
	for i := 0; i < b.N; i++ {
		sink32 = g.Uint32()
	}
}

func BenchmarkPCG32RSUint32(b *testing.B) {
	g := NewPCG32RS(1)
	for i := 0; i < b.N; i++ {
		sink32 = g.Uint32()
	}
}

func BenchmarkPCG64Uint64(b *testing.B) {
	g := NewPCG64(1)
	for i := 0; i < b.N; i++ {
		sink64 = g.Uint64()
	}
}

func BenchmarkPCG32FastBounded(b *testing.B) {
	g := NewPCG32(1)
	for i := 0; i < b.N; i++ {
		sink32 = g.FastBounded(1000)
	}
}

func BenchmarkPCG64FastBounded(b *testing.B) {
	g := NewPCG64(1)
	for i := 0; i < b.N; i++ {
		sink64 = g.FastBounded(1000)
	}
}
