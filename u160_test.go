package fixnum

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestU160Get64(t *testing.T) {
	tt := assert.WrapTB(t)
	v := U160FromLimbs([5]uint32{1, 2, 3, 4, 0xdeadbeef})
	tt.MustEqual(uint64(0x0000000200000001), v.Get64(0))
	tt.MustEqual(uint64(0x0000000400000003), v.Get64(1))

	// The last word only has one limb:
	tt.MustEqual(uint64(0xdeadbeef), v.Get64(2))
}

func TestU160Hex(t *testing.T) {
	for idx, tc := range []struct {
		in  U160
		out string
	}{
		{U160{}, strings.Repeat("0", 40)},
		{U160From64(1), strings.Repeat("0", 39) + "1"},
		{MaxU160, strings.Repeat("f", 40)},
		{U160FromLimbs([5]uint32{4: 0x12345678}), "12345678" + strings.Repeat("0", 32)},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.in.Hex())
			tt.MustEqual(tc.in, U160FromHex(tc.out))
		})
	}
}

func TestU160IncDec(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(MaxU160, U160{}.Dec())
	tt.MustEqual(U160{}, MaxU160.Inc())
	tt.MustEqual(U160FromLimbs([5]uint32{4: 1}), U160FromLimbs([5]uint32{limbMax, limbMax, limbMax, limbMax}).Inc())
}

func TestU160Shift(t *testing.T) {
	tt := assert.WrapTB(t)
	v := U160FromLimbs([5]uint32{1, 2, 3, 4, 5})
	tt.MustEqual(U160FromLimbs([5]uint32{0, 1, 2, 3, 4}), v.Lsh(32))
	tt.MustEqual(U160FromLimbs([5]uint32{3, 4, 5, 0, 0}), v.Rsh(64))
	tt.MustEqual(U160FromLimbs([5]uint32{4: 0x80000000}), U160From64(1).Lsh(159))
	tt.MustAssert(U160From64(1).Lsh(160).IsZero())
}

func TestU160Stream(t *testing.T) {
	tt := assert.WrapTB(t)

	var buf bytes.Buffer
	values := []U160{U160{}, U160From64(42), MaxU160, U160FromHex("0x0123456789abcdef0123456789abcdef01234567")}
	for _, v := range values {
		_, err := v.WriteTo(&buf)
		tt.MustOK(err)
	}
	tt.MustEqual(len(values)*U160Size, buf.Len())

	for _, v := range values {
		var out U160
		n, err := out.ReadFrom(&buf)
		tt.MustOK(err)
		tt.MustEqual(int64(U160Size), n)
		tt.MustEqual(v, out)
	}
}

func TestU160FromBigInt(t *testing.T) {
	tt := assert.WrapTB(t)
	v, inRange := U160FromBigInt(maxBig(160))
	tt.MustAssert(inRange)
	tt.MustEqual(MaxU160, v)

	v, inRange = U160FromBigInt(wrapBig(160))
	tt.MustAssert(!inRange)
	tt.MustEqual(MaxU160, v)

	tt.MustEqual(u160s("0x0123456789abcdef0123456789abcdef01234567"), U160FromHex("0123456789abcdef0123456789abcdef01234567"))
}

func TestU160Sub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, out U160
	}{
		{U160From64(3), U160From64(2), U160From64(1)},
		{U160{}, U160From64(1), MaxU160},
		{U160FromLimbs([5]uint32{4: 1}), U160From64(1), U160FromLimbs([5]uint32{limbMax, limbMax, limbMax, limbMax})},
		{MaxU160, MaxU160, U160{}},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.Sub(tc.b))
			tt.MustEqual(tc.a, tc.out.Add(tc.b))
		})
	}
}

func TestU160UnmarshalJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	v := U160From64(7)
	tt.MustOK(v.UnmarshalJSON([]byte(`null`)))
	tt.MustEqual(U160From64(7), v)
	tt.MustOK(v.UnmarshalJSON([]byte(`"0x0"`)))
	tt.MustAssert(v.IsZero())
}
