package fixnum

import (
	"fmt"
	"io"
	"math/big"
)

// U512 is a 512-bit unsigned integer stored as sixteen 32-bit limbs, least
// significant first. The zero value is 0.
type U512 struct {
	pn [u512Limbs]uint32
}

func U512From64(v uint64) (out U512) {
	setUint64(out.pn[:], v)
	return out
}

func U512FromLimbs(pn [u512Limbs]uint32) U512 { return U512{pn: pn} }

// U512FromHex parses s as hex. It never fails; see the package documentation
// for how malformed or oversized input is treated.
func U512FromHex(s string) (out U512) {
	setHex(out.pn[:], s)
	return out
}

// U512FromBytes interprets b as the byte image produced by Bytes. If len(b) is
// not U512Size, the result is zero.
func U512FromBytes(b []byte) (out U512) {
	if len(b) == U512Size {
		setBytes(out.pn[:], b)
	}
	return out
}

// U512FromBigInt creates a U512 from a big.Int. Overflow truncates to MaxU512
// and sets inRange to 'false'.
func U512FromBigInt(v *big.Int) (out U512, inRange bool) {
	inRange = setBigInt(out.pn[:], v)
	return out, inRange
}

func (u U512) Limbs() [u512Limbs]uint32 { return u.pn }

// Trim256 narrows u to a U256 by discarding the high 256 bits. This is a
// truncation; nothing reports whether bits were lost.
func (u U512) Trim256() (out U256) {
	copy(out.pn[:], u.pn[:u256Limbs])
	return out
}

func (u U512) IsZero() bool { return u == zeroU512 }
func (u U512) Size() int    { return U512Size }

func (u U512) Not() (v U512) {
	not(v.pn[:], u.pn[:])
	return v
}

// Neg returns the two's complement of u, which is also 0 - u.
func (u U512) Neg() (v U512) {
	neg(v.pn[:], u.pn[:])
	return v
}

func (u U512) Add(n U512) (v U512) {
	add(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U512) Add64(n uint64) U512 { return u.Add(U512From64(n)) }

func (u U512) Sub(n U512) (v U512) {
	m := n.Neg()
	add(v.pn[:], u.pn[:], m.pn[:])
	return v
}

func (u U512) Sub64(n uint64) U512 { return u.Sub(U512From64(n)) }

func (u U512) Inc() U512 {
	inc(u.pn[:])
	return u
}

func (u U512) Dec() U512 {
	dec(u.pn[:])
	return u
}

// PreInc increments u in place and returns the new value.
func (u *U512) PreInc() U512 { *u = u.Inc(); return *u }

// PostInc increments u in place and returns the value it held before.
func (u *U512) PostInc() (prev U512) { prev = *u; *u = u.Inc(); return prev }

func (u *U512) PreDec() U512 { *u = u.Dec(); return *u }

func (u *U512) PostDec() (prev U512) { prev = *u; *u = u.Dec(); return prev }

func (u U512) Lsh(n uint) (v U512) {
	lsh(v.pn[:], u.pn[:], n)
	return v
}

func (u U512) Rsh(n uint) (v U512) {
	rsh(v.pn[:], u.pn[:], n)
	return v
}

func (u U512) Cmp(n U512) int { return cmp(u.pn[:], n.pn[:]) }

func (u U512) Equal(n U512) bool            { return u == n }
func (u U512) Equal64(n uint64) bool        { return equal64(u.pn[:], n) }
func (u U512) GreaterThan(n U512) bool      { return u.Cmp(n) > 0 }
func (u U512) GreaterOrEqualTo(n U512) bool { return u.Cmp(n) >= 0 }
func (u U512) LessThan(n U512) bool         { return u.Cmp(n) < 0 }
func (u U512) LessOrEqualTo(n U512) bool    { return u.Cmp(n) <= 0 }

func (u U512) And(n U512) (v U512) {
	and(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U512) Or(n U512) (v U512) {
	or(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U512) Xor(n U512) (v U512) {
	xor(v.pn[:], u.pn[:], n.pn[:])
	return v
}

// Or64 ORs n into the low 64 bits; the other limbs are untouched.
func (u U512) Or64(n uint64) U512 {
	u.pn[0] |= uint32(n)
	u.pn[1] |= uint32(n >> 32)
	return u
}

// Xor64 XORs n into the low 64 bits; the other limbs are untouched.
func (u U512) Xor64(n uint64) U512 {
	u.pn[0] ^= uint32(n)
	u.pn[1] ^= uint32(n >> 32)
	return u
}

// AsFloat64 returns an approximation of u. Precision is lost above 2^53.
func (u U512) AsFloat64() float64 { return asFloat64(u.pn[:]) }

// Get64 returns the n-th 64-bit word of u, counting from the least
// significant. n must be in [0, 8).
func (u U512) Get64(n int) uint64 { return get64(u.pn[:], n) }

// AsUint64 truncates u to its low 64 bits.
func (u U512) AsUint64() uint64 { return get64(u.pn[:], 0) }

// Hex returns the 128 character lowercase hex form of u, most significant
// byte first, without a prefix.
func (u U512) Hex() string {
	var buf [U512Size * 2]byte
	return string(appendHex(buf[:0], u.pn[:]))
}

func (u U512) String() string { return u.Hex() }

func (u U512) Format(s fmt.State, c rune) { format(s, c, u.pn[:]) }

func (u U512) IntoBigInt(b *big.Int) { intoBigInt(b, u.pn[:]) }

func (u U512) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Bytes returns the U512Size byte image of u: each limb little-endian, least
// significant limb first.
func (u U512) Bytes() []byte {
	b := make([]byte, U512Size)
	putBytes(b, u.pn[:])
	return b
}

func (u U512) WriteTo(w io.Writer) (n int64, err error) { return writeLimbs(w, u.pn[:]) }

func (u *U512) ReadFrom(r io.Reader) (n int64, err error) { return readLimbs(u.pn[:], r) }

func (u U512) MarshalBinary() ([]byte, error) { return u.Bytes(), nil }

func (u *U512) UnmarshalBinary(b []byte) error { return unmarshalBinary(u.pn[:], "u512", b) }

func (u U512) MarshalText() ([]byte, error) { return []byte(u.Hex()), nil }

func (u *U512) UnmarshalText(bts []byte) error {
	*u = U512FromHex(string(bts))
	return nil
}

func (u U512) MarshalJSON() ([]byte, error) { return marshalJSON(u.pn[:]), nil }

// UnmarshalJSON accepts a quoted hex string, parsed as with U512FromHex.
// null leaves u unchanged.
func (u *U512) UnmarshalJSON(bts []byte) error {
	return unmarshalJSON(u.pn[:], "u512", bts)
}
