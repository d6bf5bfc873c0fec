package trand

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source32 is the word supply of a 32-bit generator.
type Source32 interface {
	Uint32() uint32
}

// Source64 is the word supply of a 64-bit generator.
type Source64 interface {
	Uint64() uint64
}

// Source adapts a generator to math/rand, so the stdlib distribution
// suite (Intn, Perm, Shuffle, NormFloat64, ExpFloat64, ...) can ride
// on a reproducible engine.
type Source struct {
	src Source64
}

// NewSource wraps a 64-bit generator as a math/rand source.
func NewSource(src Source64) *Source {
	return &Source{src: src}
}

// NewSource32 wraps a 32-bit generator as a math/rand source. Each
// 64-bit word is composed from two output words, first word high.
func NewSource32(src Source32) *Source {
	return &Source{src: &pair32{src: src}}
}

type pair32 struct {
	src Source32
}

func (p *pair32) Uint64() uint64 {
	return uint64(p.src.Uint32())<<32 | uint64(p.src.Uint32())
}

func (p *pair32) Seed(seed uint64) {
	if s, ok := p.src.(interface{ Seed(uint64) }); ok {
		s.Seed(seed)
	}
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	return s.src.Uint64()
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed implements rand.Source. It reseeds the wrapped engine on its
// existing stream when the engine supports reseeding.
func (s *Source) Seed(seed int64) {
	if sd, ok := s.src.(interface{ Seed(uint64) }); ok {
		sd.Seed(uint64(seed))
	}
}
