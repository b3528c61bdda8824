package fixnum

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
)

// The helpers in this file implement every operation once, over limb slices.
// U160, U256 and U512 pass slices of their arrays in; all slices given to a
// single call must have the same length. Destination slices may alias sources
// only where noted.

const (
	limbBits  = 32
	limbBytes = 4
	limbMax   = 0xffffffff
)

func setUint64(z []uint32, v uint64) {
	z[0] = uint32(v)
	z[1] = uint32(v >> 32)
	for i := 2; i < len(z); i++ {
		z[i] = 0
	}
}

// z may alias x.
func not(z, x []uint32) {
	for i := range x {
		z[i] = ^x[i]
	}
}

// z may alias x.
func neg(z, x []uint32) {
	not(z, x)
	inc(z)
}

// add sets z = x + y mod 2^(32*len(z)). z may alias x or y.
func add(z, x, y []uint32) {
	var carry uint64
	for i := range z {
		n := carry + uint64(x[i]) + uint64(y[i])
		z[i] = uint32(n & limbMax)
		carry = n >> 32
	}
}

// inc adds one in place. Carry stops at the top limb, so the all-ones value
// wraps to zero.
func inc(z []uint32) {
	top := len(z) - 1
	for i := 0; ; i++ {
		z[i]++
		if z[i] != 0 || i == top {
			return
		}
	}
}

// dec is the mirror of inc; zero wraps to all ones.
func dec(z []uint32) {
	top := len(z) - 1
	for i := 0; ; i++ {
		z[i]--
		if z[i] != limbMax || i == top {
			return
		}
	}
}

// lsh sets z = x << n. z must not alias x.
func lsh(z, x []uint32, n uint) {
	for i := range z {
		z[i] = 0
	}
	if n >= uint(len(z))*limbBits {
		return
	}
	k := int(n / limbBits)
	r := n % limbBits
	for i := 0; i+k < len(z); i++ {
		if r != 0 && i+k+1 < len(z) {
			z[i+k+1] |= x[i] >> (limbBits - r)
		}
		z[i+k] |= x[i] << r
	}
}

// rsh sets z = x >> n. z must not alias x.
func rsh(z, x []uint32, n uint) {
	for i := range z {
		z[i] = 0
	}
	if n >= uint(len(z))*limbBits {
		return
	}
	k := int(n / limbBits)
	r := n % limbBits
	for i := k; i < len(x); i++ {
		if r != 0 && i-k-1 >= 0 {
			z[i-k-1] |= x[i] << (limbBits - r)
		}
		z[i-k] |= x[i] >> r
	}
}

func cmp(x, y []uint32) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

func equal64(x []uint32, v uint64) bool {
	if x[0] != uint32(v) || x[1] != uint32(v>>32) {
		return false
	}
	for _, l := range x[2:] {
		if l != 0 {
			return false
		}
	}
	return true
}

func and(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func or(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func xor(z, x, y []uint32) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

func asFloat64(x []uint32) (out float64) {
	fact := 1.0
	for _, l := range x {
		out += fact * float64(l)
		fact *= 4294967296.0
	}
	return out
}

// get64 returns limbs 2n and 2n+1 as one word. A missing high limb (odd limb
// counts) reads as zero.
func get64(x []uint32, n int) uint64 {
	lo := uint64(x[2*n])
	if 2*n+1 >= len(x) {
		return lo
	}
	return lo | uint64(x[2*n+1])<<32
}

// putBytes writes the little-endian byte image of x into b, which must be at
// least len(x)*4 long.
func putBytes(b []byte, x []uint32) {
	for i, l := range x {
		binary.LittleEndian.PutUint32(b[i*limbBytes:], l)
	}
}

func setBytes(z []uint32, b []byte) {
	for i := range z {
		z[i] = binary.LittleEndian.Uint32(b[i*limbBytes:])
	}
}

const hexDigits = "0123456789abcdef"

// appendHex appends the most-significant-byte-first lowercase hex form of x.
func appendHex(dst []byte, x []uint32) []byte {
	for i := len(x) - 1; i >= 0; i-- {
		l := x[i]
		for shift := 28; shift >= 0; shift -= 4 {
			dst = append(dst, hexDigits[(l>>uint(shift))&0xf])
		}
	}
	return dst
}

func hexNibble(c byte) (v byte, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

// trimHex strips the leading whitespace and optional 0x prefix accepted by
// setHex and returns the run of hex digits that setHex will consume, along
// with whatever follows it.
func trimHex(s string) (digits, rest string) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	s = s[i:]
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	end := 0
	for end < len(s) {
		if _, ok := hexNibble(s[end]); !ok {
			break
		}
		end++
	}
	return s[:end], s[end:]
}

// setHex parses s leniently: anything after the leading digit run is ignored,
// and digits beyond the capacity of z are dropped from the most-significant
// end. It never fails.
func setHex(z []uint32, s string) {
	digits, _ := trimHex(s)

	var buf [maxLimbs * limbBytes]byte
	b := buf[:len(z)*limbBytes]

	p := 0
	for i := len(digits) - 1; i >= 0 && p < len(b); {
		v, _ := hexNibble(digits[i])
		i--
		b[p] = v
		if i >= 0 {
			hi, _ := hexNibble(digits[i])
			i--
			b[p] |= hi << 4
			p++
		}
	}
	setBytes(z, b)
}

// maxLimbs is the limb count of the widest type.
const maxLimbs = 16

func intoBigInt(b *big.Int, x []uint32) {
	var buf [maxLimbs * limbBytes]byte
	be := buf[:len(x)*limbBytes]
	for i, l := range x {
		binary.BigEndian.PutUint32(be[len(be)-(i+1)*limbBytes:], l)
	}
	b.SetBytes(be)
}

// setBigInt sets z from v. Negative values set zero, values that don't fit set
// all ones; inRange is false in both cases.
func setBigInt(z []uint32, v *big.Int) (inRange bool) {
	if v.Sign() < 0 {
		for i := range z {
			z[i] = 0
		}
		return false
	}
	if v.BitLen() > len(z)*limbBits {
		for i := range z {
			z[i] = limbMax
		}
		return false
	}

	var buf [maxLimbs * limbBytes]byte
	be := buf[:len(z)*limbBytes]
	v.FillBytes(be)
	for i := range z {
		z[i] = binary.BigEndian.Uint32(be[len(be)-(i+1)*limbBytes:])
	}
	return true
}

func writeLimbs(w io.Writer, x []uint32) (int64, error) {
	var buf [maxLimbs * limbBytes]byte
	b := buf[:len(x)*limbBytes]
	putBytes(b, x)
	n, err := w.Write(b)
	return int64(n), err
}

// readLimbs fills z from exactly len(z)*4 bytes of r. z is only modified when
// the full image was read.
func readLimbs(z []uint32, r io.Reader) (int64, error) {
	var buf [maxLimbs * limbBytes]byte
	b := buf[:len(z)*limbBytes]
	n, err := io.ReadFull(r, b)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return int64(n), err
	}
	setBytes(z, b)
	return int64(n), nil
}

func unmarshalBinary(z []uint32, name string, b []byte) error {
	if len(b) != len(z)*limbBytes {
		return fmt.Errorf("fixnum: %s binary length %d, expected %d: %w", name, len(b), len(z)*limbBytes, ErrInvalidLength)
	}
	setBytes(z, b)
	return nil
}

func marshalJSON(x []uint32) []byte {
	out := make([]byte, 0, len(x)*8+2)
	out = append(out, '"')
	out = appendHex(out, x)
	return append(out, '"')
}

// unmarshalJSON leaves z untouched for a JSON null.
func unmarshalJSON(z []uint32, name string, bts []byte) error {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("fixnum: %s invalid JSON %q", name, string(bts))
		}
		bts = bts[1 : ln-1]
	}
	setHex(z, string(bts))
	return nil
}

func format(s fmt.State, c rune, x []uint32) {
	switch c {
	case 's', 'v':
		var buf [maxLimbs * 8]byte
		s.Write(appendHex(buf[:0], x))
	default:
		var b big.Int
		intoBigInt(&b, x)
		b.Format(s, c)
	}
}
