package pcg

import "math/bits"

// Uint128 is an unsigned 128-bit integer held in two machine words.
// Arithmetic wraps modulo 2^128.
type Uint128 struct {
	Hi, Lo uint64
}

// U128 builds a Uint128 from its halves.
func U128(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

func (u Uint128) add(v Uint128) Uint128 {
	lo, carry := bits.Add64(u.Lo, v.Lo, 0)
	hi, _ := bits.Add64(u.Hi, v.Hi, carry)
	return Uint128{hi, lo}
}

func (u Uint128) addUint64(v uint64) Uint128 {
	lo, carry := bits.Add64(u.Lo, v, 0)
	return Uint128{u.Hi + carry, lo}
}

func (u Uint128) mul(v Uint128) Uint128 {
	hi, lo := bits.Mul64(u.Lo, v.Lo)
	hi += u.Hi*v.Lo + u.Lo*v.Hi
	return Uint128{hi, lo}
}

// shl1or1 returns u<<1|1, the derived-stream increment for selector u.
func (u Uint128) shl1or1() Uint128 {
	return Uint128{u.Hi<<1 | u.Lo>>63, u.Lo<<1 | 1}
}
