package fixnum

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	fuzz "github.com/google/gofuzz"
	"github.com/shabbyrobe/golib/assert"
)

const propIterations = 2000

type propWidth[T Uint[T]] struct {
	bits      int
	gen       func(f *fuzz.Fuzzer) T
	fromHex   func(string) T
	fromBytes func([]byte) T
}

func newFuzzer() *fuzz.Fuzzer {
	return fuzz.New().NilChance(0).RandSource(globalRNG)
}

func genU160(f *fuzz.Fuzzer) U160 {
	var pn [u160Limbs]uint32
	f.Fuzz(&pn)
	return U160FromLimbs(pn)
}

func genU256(f *fuzz.Fuzzer) U256 {
	var pn [u256Limbs]uint32
	f.Fuzz(&pn)
	return U256FromLimbs(pn)
}

func genU512(f *fuzz.Fuzzer) U512 {
	var pn [u512Limbs]uint32
	f.Fuzz(&pn)
	return U512FromLimbs(pn)
}

func TestProperties(t *testing.T) {
	t.Run("u160", func(t *testing.T) {
		testProperties(t, propWidth[U160]{160, genU160, U160FromHex, U160FromBytes})
	})
	t.Run("u256", func(t *testing.T) {
		testProperties(t, propWidth[U256]{256, genU256, U256FromHex, U256FromBytes})
	})
	t.Run("u512", func(t *testing.T) {
		testProperties(t, propWidth[U512]{512, genU512, U512FromHex, U512FromBytes})
	})
}

func testProperties[T Uint[T]](t *testing.T, w propWidth[T]) {
	var zero T
	f := newFuzzer()

	t.Run("addsub", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a, b := w.gen(f), w.gen(f)
			r := a.Add(b).Sub(b)
			tt.MustAssert(r == a, "%s + %s - %s = %s", a.Hex(), b.Hex(), b.Hex(), r.Hex())
			tt.MustAssert(a.Add(b) == b.Add(a))
			tt.MustAssert(a.Sub(a).IsZero())
		}
	})

	t.Run("neg", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a := w.gen(f)
			tt.MustAssert(a.Add(a.Neg()) == zero, "%s + -%s != 0", a.Hex(), a.Hex())
			tt.MustAssert(a.Neg().Neg() == a)
			tt.MustAssert(a.Not().Not() == a)
			tt.MustAssert(a.Not().Inc() == a.Neg())
		}
	})

	t.Run("incdec", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a := w.gen(f)
			tt.MustAssert(a.Inc().Dec() == a)
			tt.MustAssert(a.Dec().Inc() == a)
			tt.MustAssert(a.Inc() == a.Add64(1))
			tt.MustAssert(a.Dec() == a.Sub64(1))
		}
		tt.MustAssert(zero.Dec().Not() == zero)
		tt.MustAssert(zero.Dec().Inc() == zero)
	})

	t.Run("shift", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a := w.gen(f)
			s1 := uint(globalRNG.Intn(w.bits + 1))
			s2 := uint(globalRNG.Intn(w.bits + 1))

			l1 := a.Lsh(s1).Lsh(s2)
			l2 := a.Lsh(s1 + s2)
			tt.MustAssert(l1 == l2, "(%s << %d) << %d\nexp: %s\ngot: %s", a.Hex(), s1, s2, l2.Hex(), l1.Hex())

			r1 := a.Rsh(s1).Rsh(s2)
			r2 := a.Rsh(s1 + s2)
			tt.MustAssert(r1 == r2, "(%s >> %d) >> %d\nexp: %s\ngot: %s", a.Hex(), s1, s2, r2.Hex(), r1.Hex())

			tt.MustAssert(a.Lsh(0) == a)
			tt.MustAssert(a.Rsh(0) == a)
			tt.MustAssert(a.Lsh(uint(w.bits)).IsZero())
			tt.MustAssert(a.Rsh(uint(w.bits)).IsZero())
		}
	})

	t.Run("limbshift", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a := w.gen(f)
			for _, by := range []uint{32, 64} {
				words := int(by / 32)
				al, ll, rl := a.Bytes(), a.Lsh(by).Bytes(), a.Rsh(by).Bytes()
				off := words * 4

				for j := range al {
					if j < off {
						tt.MustEqual(byte(0), ll[j], "lsh %d low byte %d: %s", by, j, spew.Sdump(ll))
					} else {
						tt.MustEqual(al[j-off], ll[j], "lsh %d byte %d", by, j)
					}
					if j >= len(al)-off {
						tt.MustEqual(byte(0), rl[j], "rsh %d high byte %d: %s", by, j, spew.Sdump(rl))
					} else {
						tt.MustEqual(al[j+off], rl[j], "rsh %d byte %d", by, j)
					}
				}
			}
		}
	})

	t.Run("hex", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a := w.gen(f)
			h := a.Hex()
			tt.MustEqual(w.bits/4, len(h))
			tt.MustAssert(w.fromHex(h) == a, "round trip %s", h)
			tt.MustAssert(w.fromHex("0x"+h) == a, "round trip 0x%s", h)
			tt.MustAssert(w.fromHex(" \t"+h+"zz") == a, "round trip padded %s", h)
		}
	})

	t.Run("bytes", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a := w.gen(f)
			b := a.Bytes()
			tt.MustEqual(w.bits/8, len(b))
			tt.MustEqual(a.Size(), len(b))
			tt.MustAssert(w.fromBytes(b) == a)
			tt.MustAssert(w.fromBytes(b[1:]).IsZero())
		}
	})

	t.Run("order", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a, b := w.gen(f), w.gen(f)
			c := a.Cmp(b)
			tt.MustEqual(-c, b.Cmp(a))
			tt.MustEqual(c < 0, a.LessThan(b))
			tt.MustEqual(c <= 0, a.LessOrEqualTo(b))
			tt.MustEqual(c > 0, a.GreaterThan(b))
			tt.MustEqual(c >= 0, a.GreaterOrEqualTo(b))
			tt.MustEqual(c == 0, a.Equal(b))
			tt.MustEqual(a.AsBigInt().Cmp(b.AsBigInt()), c)

			l, s := Larger(a, b), Smaller(a, b)
			tt.MustAssert(l.GreaterOrEqualTo(s))
			tt.MustAssert(Difference(a, b) == l.Sub(s))
			tt.MustAssert(Difference(a, b) == Difference(b, a))
		}
	})

	t.Run("bitwise", func(t *testing.T) {
		tt := assert.WrapTB(t)
		for i := 0; i < propIterations; i++ {
			a, b := w.gen(f), w.gen(f)
			tt.MustAssert(a.Xor(a).IsZero())
			tt.MustAssert(a.And(a.Not()).IsZero())
			tt.MustAssert(a.Or(a.Not()) == zero.Not())
			tt.MustAssert(a.Xor(b) == a.Or(b).And(a.And(b).Not()))
		}
	})
}

func TestEqual64(t *testing.T) {
	for idx, tc := range []struct {
		ok bool
		v  uint64
		u  fmt.Stringer
		eq func(uint64) bool
	}{
		{true, 0, U160{}, U160{}.Equal64},
		{true, maxUint64, U160From64(maxUint64), U160From64(maxUint64).Equal64},
		{false, maxUint64, MaxU160, MaxU160.Equal64},
		{true, 1 << 40, U512From64(1 << 40), U512From64(1 << 40).Equal64},
		{false, 0, U512From64(1).Lsh(511), U512From64(1).Lsh(511).Equal64},
		{false, 1, U256From64(1).Lsh(64).Or64(1), U256From64(1).Lsh(64).Or64(1).Equal64},
	} {
		t.Run(fmt.Sprintf("%d/%s==%d", idx, tc.u, tc.v), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.ok, tc.eq(tc.v))
		})
	}
}

func TestLargerSmaller(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(MaxU160, Larger(U160From64(1), MaxU160))
	tt.MustEqual(U256From64(1), Smaller(MaxU256, U256From64(1)))
	tt.MustEqual(MaxU512.Sub64(1), Difference(U512From64(1), MaxU512))
	tt.MustEqual(MaxU512.Sub64(1), Difference(MaxU512, U512From64(1)))
}
