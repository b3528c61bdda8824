/*
Package fixnum provides fixed-width 160, 256 and 512-bit unsigned integers
(U160, U256, U512), the sizes used for hashes, identifiers and numeric targets.

All three are value types built from 32-bit limbs, least significant first, and
all operations return new values. They support addition, subtraction, negation,
increment and decrement (all wrapping modulo 2^N), shifts, bitwise operators,
ordering, hex text and a fixed-size binary form.

	a := U256From64(7)
	b := U256FromHex("0x0000000f000000000000000000000000")
	fmt.Println(a.Or(b))
	// Output: 000000000000000000000000000000000000000f000000000000000000000007

Nothing in this package reports errors for bad input or overflow. Instead:

	- Hex input has leading whitespace and an optional 0x prefix skipped; the
	  leading run of hex digits is parsed and anything after it is ignored.
	  Digits beyond the width are dropped from the most-significant end.
	- FromBytes with a slice of the wrong length returns zero.
	- Add, Sub, Inc, Dec and Neg wrap.
	- Shifting by the width or more returns zero.
	- U512.Trim256 discards the high half.

Callers that need validation must do it themselves. Only the Go decoding
interfaces (UnmarshalBinary, UnmarshalJSON, ReadFrom) can fail.

The binary form is Size() bytes: each limb little-endian, least significant
limb first. Hex is the same bytes reversed, most significant first.

U160, U256 and U512 support the following formatting and marshalling interfaces:

	- fmt.Formatter (%s and %v print hex; %d, %x, %b, %o go through big.Int)
	- fmt.Stringer
	- io.WriterTo, io.ReaderFrom
	- encoding.BinaryMarshaler, encoding.BinaryUnmarshaler
	- encoding.TextMarshaler, encoding.TextUnmarshaler
	- json.Marshaler, json.Unmarshaler

*/
package fixnum
