package trand

import (
	"encoding/binary"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/tutils/trand/pcg"
)

var (
	defaultOnce   sync.Once
	defaultReader io.Reader
)

func defaultInit() {
	seed, err := pcg.SeedFromEntropy()
	if err != nil {
		panic("trand: seeding default generator: " + err.Error())
	}
	g := pcg.NewPCG64Seq(seed, pcg.NextSeq())
	defaultReader = NewSyncReader(NewReader(g))
}

// Read fills p from the shared default generator. The default engine
// is seeded from system entropy on first use and is safe for
// concurrent callers. It always succeeds.
func Read(p []byte) (n int, err error) {
	defaultOnce.Do(defaultInit)
	return defaultReader.Read(p)
}

// Uint64 returns the next word of the shared default generator.
func Uint64() uint64 {
	var b [8]byte
	Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// NewUUID returns a version 4 UUID drawn from the shared default
// generator.
func NewUUID() (uuid.UUID, error) {
	defaultOnce.Do(defaultInit)
	return uuid.NewRandomFromReader(defaultReader)
}
