package fixnum

import (
	"fmt"
	"io"
	"math/big"

	"github.com/holiman/uint256"
)

// U256 is a 256-bit unsigned integer stored as eight 32-bit limbs, least
// significant first. The zero value is 0.
type U256 struct {
	pn [u256Limbs]uint32
}

func U256From64(v uint64) (out U256) {
	setUint64(out.pn[:], v)
	return out
}

func U256FromLimbs(pn [u256Limbs]uint32) U256 { return U256{pn: pn} }

// U256FromHex parses s as hex. It never fails; see the package documentation
// for how malformed or oversized input is treated.
func U256FromHex(s string) (out U256) {
	setHex(out.pn[:], s)
	return out
}

// U256FromBytes interprets b as the byte image produced by Bytes. If len(b) is
// not U256Size, the result is zero.
func U256FromBytes(b []byte) (out U256) {
	if len(b) == U256Size {
		setBytes(out.pn[:], b)
	}
	return out
}

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets inRange to 'false'.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	inRange = setBigInt(out.pn[:], v)
	return out, inRange
}

func U256FromUint256(v *uint256.Int) (out U256) {
	for i, w := range v {
		out.pn[2*i] = uint32(w)
		out.pn[2*i+1] = uint32(w >> 32)
	}
	return out
}

func (u U256) AsUint256() *uint256.Int {
	var v uint256.Int
	for i := range v {
		v[i] = get64(u.pn[:], i)
	}
	return &v
}

func (u U256) Limbs() [u256Limbs]uint32 { return u.pn }

func (u U256) IsZero() bool { return u == zeroU256 }
func (u U256) Size() int    { return U256Size }

func (u U256) Not() (v U256) {
	not(v.pn[:], u.pn[:])
	return v
}

// Neg returns the two's complement of u, which is also 0 - u.
func (u U256) Neg() (v U256) {
	neg(v.pn[:], u.pn[:])
	return v
}

func (u U256) Add(n U256) (v U256) {
	add(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U256) Add64(n uint64) U256 { return u.Add(U256From64(n)) }

func (u U256) Sub(n U256) (v U256) {
	m := n.Neg()
	add(v.pn[:], u.pn[:], m.pn[:])
	return v
}

func (u U256) Sub64(n uint64) U256 { return u.Sub(U256From64(n)) }

func (u U256) Inc() U256 {
	inc(u.pn[:])
	return u
}

func (u U256) Dec() U256 {
	dec(u.pn[:])
	return u
}

// PreInc increments u in place and returns the new value.
func (u *U256) PreInc() U256 { *u = u.Inc(); return *u }

// PostInc increments u in place and returns the value it held before.
func (u *U256) PostInc() (prev U256) { prev = *u; *u = u.Inc(); return prev }

func (u *U256) PreDec() U256 { *u = u.Dec(); return *u }

func (u *U256) PostDec() (prev U256) { prev = *u; *u = u.Dec(); return prev }

func (u U256) Lsh(n uint) (v U256) {
	lsh(v.pn[:], u.pn[:], n)
	return v
}

func (u U256) Rsh(n uint) (v U256) {
	rsh(v.pn[:], u.pn[:], n)
	return v
}

func (u U256) Cmp(n U256) int { return cmp(u.pn[:], n.pn[:]) }

func (u U256) Equal(n U256) bool            { return u == n }
func (u U256) Equal64(n uint64) bool        { return equal64(u.pn[:], n) }
func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

func (u U256) And(n U256) (v U256) {
	and(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U256) Or(n U256) (v U256) {
	or(v.pn[:], u.pn[:], n.pn[:])
	return v
}

func (u U256) Xor(n U256) (v U256) {
	xor(v.pn[:], u.pn[:], n.pn[:])
	return v
}

// Or64 ORs n into the low 64 bits; the other limbs are untouched.
func (u U256) Or64(n uint64) U256 {
	u.pn[0] |= uint32(n)
	u.pn[1] |= uint32(n >> 32)
	return u
}

// Xor64 XORs n into the low 64 bits; the other limbs are untouched.
func (u U256) Xor64(n uint64) U256 {
	u.pn[0] ^= uint32(n)
	u.pn[1] ^= uint32(n >> 32)
	return u
}

// AsFloat64 returns an approximation of u. Precision is lost above 2^53.
func (u U256) AsFloat64() float64 { return asFloat64(u.pn[:]) }

// Get64 returns the n-th 64-bit word of u, counting from the least
// significant. n must be in [0, 4).
func (u U256) Get64(n int) uint64 { return get64(u.pn[:], n) }

// AsUint64 truncates u to its low 64 bits.
func (u U256) AsUint64() uint64 { return get64(u.pn[:], 0) }

// Hex returns the 64 character lowercase hex form of u, most significant
// byte first, without a prefix.
func (u U256) Hex() string {
	var buf [U256Size * 2]byte
	return string(appendHex(buf[:0], u.pn[:]))
}

func (u U256) String() string { return u.Hex() }

func (u U256) Format(s fmt.State, c rune) { format(s, c, u.pn[:]) }

func (u U256) IntoBigInt(b *big.Int) { intoBigInt(b, u.pn[:]) }

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Bytes returns the U256Size byte image of u: each limb little-endian, least
// significant limb first.
func (u U256) Bytes() []byte {
	b := make([]byte, U256Size)
	putBytes(b, u.pn[:])
	return b
}

func (u U256) WriteTo(w io.Writer) (n int64, err error) { return writeLimbs(w, u.pn[:]) }

func (u *U256) ReadFrom(r io.Reader) (n int64, err error) { return readLimbs(u.pn[:], r) }

func (u U256) MarshalBinary() ([]byte, error) { return u.Bytes(), nil }

func (u *U256) UnmarshalBinary(b []byte) error { return unmarshalBinary(u.pn[:], "u256", b) }

func (u U256) MarshalText() ([]byte, error) { return []byte(u.Hex()), nil }

func (u *U256) UnmarshalText(bts []byte) error {
	*u = U256FromHex(string(bts))
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) { return marshalJSON(u.pn[:]), nil }

// UnmarshalJSON accepts a quoted hex string, parsed as with U256FromHex.
// null leaves u unchanged.
func (u *U256) UnmarshalJSON(bts []byte) error {
	return unmarshalJSON(u.pn[:], "u256", bts)
}
