package pcg

import (
	"encoding/binary"
	"errors"
)

var errUnmarshal = errors.New("trand/pcg: invalid generator encoding")

// State tokens carry a magic prefix, then state and increment in
// big-endian order. The increment travels with the state so a resumed
// engine stays on its original stream.

func marshal64(magic string, g *lcg64) []byte {
	b := make([]byte, 0, len(magic)+16)
	b = append(b, magic...)
	b = binary.BigEndian.AppendUint64(b, g.state)
	b = binary.BigEndian.AppendUint64(b, g.inc)
	return b
}

func unmarshal64(magic string, data []byte, g *lcg64) error {
	if len(data) != len(magic)+16 || string(data[:len(magic)]) != magic {
		return errUnmarshal
	}
	state := binary.BigEndian.Uint64(data[len(magic):])
	inc := binary.BigEndian.Uint64(data[len(magic)+8:])
	if inc&1 == 0 {
		return errUnmarshal
	}
	g.state = state
	g.inc = inc
	return nil
}

func marshal128(magic string, g *lcg128) []byte {
	b := make([]byte, 0, len(magic)+32)
	b = append(b, magic...)
	b = binary.BigEndian.AppendUint64(b, g.state.Hi)
	b = binary.BigEndian.AppendUint64(b, g.state.Lo)
	b = binary.BigEndian.AppendUint64(b, g.inc.Hi)
	b = binary.BigEndian.AppendUint64(b, g.inc.Lo)
	return b
}

func unmarshal128(magic string, data []byte, g *lcg128) error {
	if len(data) != len(magic)+32 || string(data[:len(magic)]) != magic {
		return errUnmarshal
	}
	p := data[len(magic):]
	state := Uint128{binary.BigEndian.Uint64(p), binary.BigEndian.Uint64(p[8:])}
	inc := Uint128{binary.BigEndian.Uint64(p[16:]), binary.BigEndian.Uint64(p[24:])}
	if inc.Lo&1 == 0 {
		return errUnmarshal
	}
	g.state = state
	g.inc = inc
	return nil
}
