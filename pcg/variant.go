package pcg

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
)

// Variant names one of the reference engine configurations, spelled
// the way the reference implementation spells them.
type Variant string

// The six reference configurations.
const (
	SetseqXshRR6432  Variant = "setseq_xsh_rr_64_32"
	OneseqXshRR6432  Variant = "oneseq_xsh_rr_64_32"
	SetseqXshRS6432  Variant = "setseq_xsh_rs_64_32"
	OneseqXshRS6432  Variant = "oneseq_xsh_rs_64_32"
	SetseqXslRR12864 Variant = "setseq_xsl_rr_128_64"
	OneseqXslRR12864 Variant = "oneseq_xsl_rr_128_64"
)

// Variants returns the reference configurations in canonical order.
func Variants() []Variant {
	return []Variant{
		SetseqXshRR6432,
		OneseqXshRR6432,
		SetseqXshRS6432,
		OneseqXshRS6432,
		SetseqXslRR12864,
		OneseqXslRR12864,
	}
}

// ErrSeqRequired is returned by New when a derived-stream variant is
// requested without a stream selector.
var ErrSeqRequired = errors.New("trand/pcg: derived-stream variant requires a stream selector")

// Generator is one seeded engine viewed through a width-independent
// lens. Uint64 returns one output word per call; for the 32-bit
// engines the word is zero-extended, and OutputBits tells how wide it
// really is.
type Generator interface {
	Uint64() uint64
	OutputBits() int
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

var _ Generator = gen32{}
var _ Generator = gen32rs{}
var _ Generator = gen64{}

type gen32 struct{ *PCG32 }

func (g gen32) Uint64() uint64  { return uint64(g.Uint32()) }
func (g gen32) OutputBits() int { return 32 }

type gen32rs struct{ *PCG32RS }

func (g gen32rs) Uint64() uint64  { return uint64(g.Uint32()) }
func (g gen32rs) OutputBits() int { return 32 }

type gen64 struct{ *PCG64 }

func (g gen64) OutputBits() int { return 64 }

// Options collects the New parameters.
type Options struct {
	variant Variant
	seed    uint64
	seedSet bool
	seq     uint64
	seqSet  bool
}

// Option is an option setter for New.
type Option func(opts *Options)

// WithVariant selects the engine configuration.
func WithVariant(v Variant) Option {
	return func(opts *Options) {
		opts.variant = v
	}
}

// WithSeed sets the seed. Without it the seed is drawn from system
// entropy.
func WithSeed(seed uint64) Option {
	return func(opts *Options) {
		opts.seed = seed
		opts.seedSet = true
	}
}

// WithSeq sets the stream selector for derived-stream variants.
// Fixed-stream variants ignore it.
func WithSeq(seq uint64) Option {
	return func(opts *Options) {
		opts.seq = seq
		opts.seqSet = true
	}
}

func newOptions(opts ...Option) *Options {
	opt := &Options{
		variant: OneseqXshRR6432,
	}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// New builds a Generator for a configuration picked at run time. The
// typed constructors are the better choice when the configuration is
// known at compile time; New exists for name-driven callers, and is
// the one place a missing stream selector can surface as
// ErrSeqRequired.
func New(opts ...Option) (Generator, error) {
	opt := newOptions(opts...)

	seed := opt.seed
	if !opt.seedSet {
		s, err := SeedFromEntropy()
		if err != nil {
			return nil, err
		}
		seed = s
	}

	switch opt.variant {
	case SetseqXshRR6432, SetseqXshRS6432, SetseqXslRR12864:
		if !opt.seqSet {
			return nil, ErrSeqRequired
		}
	}

	switch opt.variant {
	case SetseqXshRR6432:
		return gen32{NewPCG32Seq(seed, opt.seq)}, nil
	case OneseqXshRR6432:
		return gen32{NewPCG32(seed)}, nil
	case SetseqXshRS6432:
		return gen32rs{NewPCG32RSSeq(seed, opt.seq)}, nil
	case OneseqXshRS6432:
		return gen32rs{NewPCG32RS(seed)}, nil
	case SetseqXslRR12864:
		return gen64{NewPCG64Seq(seed, opt.seq)}, nil
	case OneseqXslRR12864:
		return gen64{NewPCG64(seed)}, nil
	}
	return nil, fmt.Errorf("trand/pcg: unknown variant %q", opt.variant)
}

// NewFromState restores a generator from a MarshalBinary token. The
// engine is picked from the token's magic prefix.
func NewFromState(data []byte) (Generator, error) {
	switch {
	case bytes.HasPrefix(data, []byte(pcg64Magic)):
		g := new(PCG64)
		if err := g.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return gen64{g}, nil
	case bytes.HasPrefix(data, []byte(pcg32rsMagic)):
		g := new(PCG32RS)
		if err := g.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return gen32rs{g}, nil
	case bytes.HasPrefix(data, []byte(pcg32Magic)):
		g := new(PCG32)
		if err := g.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return gen32{g}, nil
	}
	return nil, errUnmarshal
}
