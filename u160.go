package fixnum

import (
	"fmt"
	"io"
	"math/big"
)

// U160 is a 160-bit unsigned integer stored as five 32-bit limbs, least
// significant first. The zero value is 0.
type U160 struct {
	pn [u160Limbs]uint32
}

func U160From64(v uint64) (out U160) {
	setUint64(out.pn[:], v)
	return out
}

func U160FromLimbs(pn [u160Limbs]uint32) U160 { return U160{pn: pn} }

func U160FromHex(s string) (out U160) {
	setHex(out.pn[:], s)
	return out
}

// U160FromBytes interprets b as the byte image produced by Bytes. If len(b) is
// not U160Size, the result is zero.
func U160FromBytes(b []byte) (out U160) {
	if len(b) == U160Size {
		setBytes(out.pn[:], b)
	}
	return out
}

// U160FromBigInt creates a U160 from a big.Int. Overflow truncates to MaxU160
// and sets inRange to 'false'.
func U160FromBigInt(v *big.Int) (out U160, inRange bool) {
	inRange = setBigInt(out.pn[:], v)
	return out, inRange
}

func (u U160) Limbs() [u160Limbs]uint32 { return u.pn }

func (u U160) IsZero() bool { return u == zeroU160 }
func (u U160) Size() int    { return U160Size }

func (u U160) Not() (v U160) {
	not(v.pn[:], u.pn[:])
	return v
}

// Neg returns the two's complement of u, which is also 0 - u.
func (u U160) Neg() (v U160) {
	neg(v.pn[:], u.pn[:])
	return v
}

func (u U160) Add(n U160) (v U160) {
	add(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U160) Add64(n uint64) U160 { return u.Add(U160From64(n)) }

func (u U160) Sub(n U160) (v U160) {
	m := n.Neg()
	add(v.pn[:], u.pn[:], m.pn[:])
	return v
}

func (u U160) Sub64(n uint64) U160 { return u.Sub(U160From64(n)) }

func (u U160) Inc() U160 {
	inc(u.pn[:])
	return u
}

func (u U160) Dec() U160 {
	dec(u.pn[:])
	return u
}

func (u *U160) PreInc() U160 { *u = u.Inc(); return *u }

func (u *U160) PostInc() (prev U160) { prev = *u; *u = u.Inc(); return prev }

func (u *U160) PreDec() U160 { *u = u.Dec(); return *u }

func (u *U160) PostDec() (prev U160) { prev = *u; *u = u.Dec(); return prev }

func (u U160) Lsh(n uint) (v U160) {
	lsh(v.pn[:], u.pn[:], n)
	return v
}

func (u U160) Rsh(n uint) (v U160) {
	rsh(v.pn[:], u.pn[:], n)
	return v
}

func (u U160) Cmp(n U160) int { return cmp(u.pn[:], n.pn[:]) }

func (u U160) Equal(n U160) bool            { return u == n }
func (u U160) Equal64(n uint64) bool        { return equal64(u.pn[:], n) }
func (u U160) GreaterThan(n U160) bool      { return u.Cmp(n) > 0 }
func (u U160) GreaterOrEqualTo(n U160) bool { return u.Cmp(n) >= 0 }
func (u U160) LessThan(n U160) bool         { return u.Cmp(n) < 0 }
func (u U160) LessOrEqualTo(n U160) bool    { return u.Cmp(n) <= 0 }

func (u U160) And(n U160) (v U160) {
	and(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U160) Or(n U160) (v U160) {
	or(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U160) Xor(n U160) (v U160) {
	xor(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U160) Or64(n uint64) U160 {
	u.pn[0] |= uint32(n)
	u.pn[1] |= uint32(n >> 32)
	return u
}

func (u U160) Xor64(n uint64) U160 {
	u.pn[0] ^= uint32(n)
	u.pn[1] ^= uint32(n >> 32)
	return u
}

// AsFloat64 returns an approximation of u. Precision is lost above 2^53.
func (u U160) AsFloat64() float64 { return asFloat64(u.pn[:]) }

// Get64 returns the n-th 64-bit word of u, counting from the least
// significant. n must be in [0, 3); the last word only has 32 bits.
func (u U160) Get64(n int) uint64 { return get64(u.pn[:], n) }

// AsUint64 truncates u to its low 64 bits.
func (u U160) AsUint64() uint64 { return get64(u.pn[:], 0) }

// Hex returns the 40 character lowercase hex form of u, most significant
// byte first, without a prefix.
func (u U160) Hex() string {
	var buf [U160Size * 2]byte
	return string(appendHex(buf[:0], u.pn[:]))
}

func (u U160) String() string { return u.Hex() }

func (u U160) Format(s fmt.State, c rune) { format(s, c, u.pn[:]) }

func (u U160) IntoBigInt(b *big.Int) { intoBigInt(b, u.pn[:]) }

func (u U160) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Bytes returns the U160Size byte image of u: each limb little-endian, least
// significant limb first.
func (u U160) Bytes() []byte {
	b := make([]byte, U160Size)
	putBytes(b, u.pn[:])
	return b
}

func (u U160) WriteTo(w io.Writer) (n int64, err error) { return writeLimbs(w, u.pn[:]) }

func (u *U160) ReadFrom(r io.Reader) (n int64, err error) { return readLimbs(u.pn[:], r) }

func (u U160) MarshalBinary() ([]byte, error) { return u.Bytes(), nil }

func (u *U160) UnmarshalBinary(b []byte) error { return unmarshalBinary(u.pn[:], "u160", b) }

func (u U160) MarshalText() ([]byte, error) { return []byte(u.Hex()), nil }

func (u *U160) UnmarshalText(bts []byte) error {
	*u = U160FromHex(string(bts))
	return nil
}

func (u U160) MarshalJSON() ([]byte, error) { return marshalJSON(u.pn[:]), nil }

// UnmarshalJSON accepts a quoted hex string, parsed as with U160FromHex.
// null leaves u unchanged.
func (u *U160) UnmarshalJSON(bts []byte) error {
	return unmarshalJSON(u.pn[:], "u160", bts)
}
