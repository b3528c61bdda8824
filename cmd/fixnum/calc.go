package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	fixnum "github.com/shabbyrobe/go-fixnum"
)

// calculator evaluates commands for a single width. Operands arrive as hex
// strings and results leave as strings so the command layer stays
// width-agnostic.
type calculator interface {
	Bits() int
	Unary(op, a string) (string, error)
	Binary(op, a, b string) (string, error)
	Shift(op, a, n string) (string, error)
	Cmp(a, b string) (int, error)
	Decimal(a string) (string, error)
	Float(a string) (float64, error)
	Word(a, n string) (uint64, error)
	Encode(a string) (string, error)
	Decode(s string) (string, error)
	Trim256(a string) (string, error)
}

func newCalculator(bits int, strict bool) (calculator, error) {
	switch bits {
	case 160:
		return &calc[fixnum.U160]{
			bits: 160, size: fixnum.U160Size, strict: strict,
			fromHex: fixnum.U160FromHex, fromBytes: fixnum.U160FromBytes,
		}, nil
	case 256:
		return &calc[fixnum.U256]{
			bits: 256, size: fixnum.U256Size, strict: strict,
			fromHex: fixnum.U256FromHex, fromBytes: fixnum.U256FromBytes,
		}, nil
	case 512:
		return &calc[fixnum.U512]{
			bits: 512, size: fixnum.U512Size, strict: strict,
			fromHex: fixnum.U512FromHex, fromBytes: fixnum.U512FromBytes,
			trim256: fixnum.U512.Trim256,
		}, nil
	default:
		return nil, fmt.Errorf("fixnum: unsupported width %d, expected 160, 256 or 512", bits)
	}
}

type calc[T fixnum.Uint[T]] struct {
	bits      int
	size      int
	strict    bool
	fromHex   func(string) T
	fromBytes func([]byte) T
	trim256   func(T) fixnum.U256
}

func (c *calc[T]) Bits() int { return c.bits }

func (c *calc[T]) parse(s string) (v T, err error) {
	if c.strict {
		if err := checkHex(s, c.size); err != nil {
			return v, err
		}
	}
	return c.fromHex(s), nil
}

func (c *calc[T]) parse2(a, b string) (x, y T, err error) {
	if x, err = c.parse(a); err != nil {
		return x, y, err
	}
	if y, err = c.parse(b); err != nil {
		return x, y, err
	}
	return x, y, nil
}

func (c *calc[T]) Unary(op, a string) (string, error) {
	x, err := c.parse(a)
	if err != nil {
		return "", err
	}
	switch op {
	case "hex":
		return x.Hex(), nil
	case "not":
		return x.Not().Hex(), nil
	case "neg":
		return x.Neg().Hex(), nil
	case "inc":
		return x.Inc().Hex(), nil
	case "dec":
		return x.Dec().Hex(), nil
	default:
		return "", fmt.Errorf("fixnum: unknown unary op %q", op)
	}
}

func (c *calc[T]) Binary(op, a, b string) (string, error) {
	x, y, err := c.parse2(a, b)
	if err != nil {
		return "", err
	}
	switch op {
	case "add":
		return x.Add(y).Hex(), nil
	case "sub":
		return x.Sub(y).Hex(), nil
	case "and":
		return x.And(y).Hex(), nil
	case "or":
		return x.Or(y).Hex(), nil
	case "xor":
		return x.Xor(y).Hex(), nil
	default:
		return "", fmt.Errorf("fixnum: unknown binary op %q", op)
	}
}

func (c *calc[T]) Shift(op, a, n string) (string, error) {
	x, err := c.parse(a)
	if err != nil {
		return "", err
	}
	by, err := strconv.ParseUint(n, 10, 0)
	if err != nil {
		return "", fmt.Errorf("fixnum: shift amount %q: %w", n, err)
	}
	if c.strict && by >= uint64(c.bits) {
		return "", fmt.Errorf("fixnum: shift amount %d out of range for %d bits", by, c.bits)
	}
	switch op {
	case "shl":
		return x.Lsh(uint(by)).Hex(), nil
	case "shr":
		return x.Rsh(uint(by)).Hex(), nil
	default:
		return "", fmt.Errorf("fixnum: unknown shift op %q", op)
	}
}

func (c *calc[T]) Cmp(a, b string) (int, error) {
	x, y, err := c.parse2(a, b)
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

func (c *calc[T]) Decimal(a string) (string, error) {
	x, err := c.parse(a)
	if err != nil {
		return "", err
	}
	return x.AsBigInt().String(), nil
}

func (c *calc[T]) Float(a string) (float64, error) {
	x, err := c.parse(a)
	if err != nil {
		return 0, err
	}
	return x.AsFloat64(), nil
}

func (c *calc[T]) Word(a, n string) (uint64, error) {
	x, err := c.parse(a)
	if err != nil {
		return 0, err
	}
	words := (c.bits + 63) / 64
	idx, err := strconv.Atoi(n)
	if err != nil {
		return 0, fmt.Errorf("fixnum: word index %q: %w", n, err)
	}
	if idx < 0 || idx >= words {
		return 0, fmt.Errorf("fixnum: word index %d out of range [0, %d)", idx, words)
	}
	return x.Get64(idx), nil
}

func (c *calc[T]) Encode(a string) (string, error) {
	x, err := c.parse(a)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(x.Bytes()), nil
}

// Decode always checks the length: a short or long image would otherwise
// decode to zero without complaint.
func (c *calc[T]) Decode(s string) (string, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("fixnum: decode: %w", err)
	}
	if len(b) != c.size {
		return "", fmt.Errorf("fixnum: decode: %d bytes, expected %d", len(b), c.size)
	}
	return c.fromBytes(b).Hex(), nil
}

func (c *calc[T]) Trim256(a string) (string, error) {
	if c.trim256 == nil {
		return "", fmt.Errorf("fixnum: trim256 requires --width 512, got %d", c.bits)
	}
	x, err := c.parse(a)
	if err != nil {
		return "", err
	}
	return c.trim256(x).Hex(), nil
}

// checkHex rejects anything the lenient parser would quietly drop: empty
// input, trailing garbage and digits beyond the width.
func checkHex(s string, size int) error {
	digits := strings.TrimSpace(s)
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	if digits == "" {
		return fmt.Errorf("fixnum: %q: no hex digits", s)
	}
	if i := strings.IndexFunc(digits, func(r rune) bool {
		return !strings.ContainsRune("0123456789abcdefABCDEF", r)
	}); i >= 0 {
		r, _ := utf8.DecodeRuneInString(digits[i:])
		return fmt.Errorf("fixnum: %q: invalid hex character %q", s, r)
	}
	if len(digits) > size*2 {
		return fmt.Errorf("fixnum: %q: %d digits exceeds %d", s, len(digits), size*2)
	}
	return nil
}
