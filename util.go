package fixnum

import (
	"math/big"
)

// Uint is the method set shared by U160, U256 and U512. It lets code that
// doesn't care about width, like the fixnum command, be written once.
type Uint[T any] interface {
	comparable

	IsZero() bool
	Size() int

	Not() T
	Neg() T
	Add(T) T
	Add64(uint64) T
	Sub(T) T
	Sub64(uint64) T
	Inc() T
	Dec() T
	Lsh(uint) T
	Rsh(uint) T

	And(T) T
	Or(T) T
	Xor(T) T
	Or64(uint64) T
	Xor64(uint64) T

	Cmp(T) int
	Equal(T) bool
	Equal64(uint64) bool
	GreaterThan(T) bool
	GreaterOrEqualTo(T) bool
	LessThan(T) bool
	LessOrEqualTo(T) bool

	AsFloat64() float64
	Get64(int) uint64
	Hex() string
	Bytes() []byte
	AsBigInt() *big.Int
}

func isUint[T Uint[T]]() {}

var (
	_ = isUint[U160]
	_ = isUint[U256]
	_ = isUint[U512]
)

// Difference subtracts the smaller of a and b from the larger.
func Difference[T Uint[T]](a, b T) T {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger[T Uint[T]](a, b T) T {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func Smaller[T Uint[T]](a, b T) T {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
