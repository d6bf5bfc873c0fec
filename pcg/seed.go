package pcg

import (
	crand "crypto/rand"
	"crypto/sha512"
	"encoding/binary"
	"sync/atomic"
)

// SeedFromEntropy returns a seed drawn from the operating system
// entropy pool.
func SeedFromEntropy() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// SeedFromBytes derives a 64-bit seed from arbitrary bytes, hashing
// so that short or structured inputs still spread over the seed
// space.
func SeedFromBytes(b []byte) uint64 {
	sum := sha512.Sum512(b)
	return binary.BigEndian.Uint64(sum[:8])
}

// SeedFromBytes128 is SeedFromBytes at the 128-bit state width.
func SeedFromBytes128(b []byte) Uint128 {
	sum := sha512.Sum512(b)
	return Uint128{
		Hi: binary.BigEndian.Uint64(sum[:8]),
		Lo: binary.BigEndian.Uint64(sum[8:16]),
	}
}

var seqCounter uint64

// NextSeq returns a process-unique stream selector, so concurrent
// units can each derive an independent stream from one master seed
// without coordination.
func NextSeq() uint64 {
	return atomic.AddUint64(&seqCounter, 1)
}
