package fixnum

import (
	"errors"
)

const (
	u160Limbs = 5
	u256Limbs = 8
	u512Limbs = 16

	// Encoded sizes in bytes, see Bytes and WriteTo.
	U160Size = u160Limbs * limbBytes
	U256Size = u256Limbs * limbBytes
	U512Size = u512Limbs * limbBytes
)

// ErrInvalidLength is returned by UnmarshalBinary when the input is not
// exactly the encoded size of the type.
var ErrInvalidLength = errors.New("fixnum: invalid binary length")

var (
	MaxU160 = U160{}.Dec()
	MaxU256 = U256{}.Dec()
	MaxU512 = U512{}.Dec()

	zeroU160 U160
	zeroU256 U256
	zeroU512 U512
)
