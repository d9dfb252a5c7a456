package judymap

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestEncodeKeyWidthMatchesType(t *testing.T) {
	require.Len(t, encodeKey[int8](0), 1)
	require.Len(t, encodeKey[int16](0), 2)
	require.Len(t, encodeKey[int32](0), 4)
	require.Len(t, encodeKey[int64](0), 8)
	require.Len(t, encodeKey[uint8](0), 1)
	require.Len(t, encodeKey[uint16](0), 2)
	require.Len(t, encodeKey[uint32](0), 4)
	require.Len(t, encodeKey[uint64](0), 8)
}

func TestEncodeDecodeKeyRoundTripsSigned(t *testing.T) {
	values := []int64{math.MinInt64, math.MinInt32, -1, 0, 1, math.MaxInt32, math.MaxInt64}
	for _, v := range values {
		b := encodeKey[int64](v)
		require.Equal(t, v, decodeKey[int64](b))
	}
}

func TestEncodeDecodeKeyRoundTripsUnsigned(t *testing.T) {
	values := []uint64{0, 1, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		b := encodeKey[uint64](v)
		require.Equal(t, v, decodeKey[uint64](b))
	}
}

func TestEncodeKeySignedOrderPreserving(t *testing.T) {
	lo := encodeKey[int32](-100)
	hi := encodeKey[int32](100)
	require.True(t, lessBytes(lo, hi), "negative value must encode less than positive value")

	zero := encodeKey[int8](0)
	neg := encodeKey[int8](-1)
	require.True(t, lessBytes(neg, zero))
}

func TestEncodeKeyUnsignedIsPlainBigEndianNotBiased(t *testing.T) {
	// Unlike signed keys, unsigned keys carry no bias: encoding 0 must be
	// all-zero bytes, matching a plain big-endian rendition.
	b := encodeKey[uint32](0)
	require.Equal(t, []byte{0, 0, 0, 0}, b)

	b = encodeKey[uint8](0xFF)
	require.Equal(t, []byte{0xFF}, b)
}

func TestEncodeKeyUnsignedOrderPreserving(t *testing.T) {
	lo := encodeKey[uint16](1)
	hi := encodeKey[uint16](60000)
	require.True(t, lessBytes(lo, hi))
}

func TestEncodeKeyIntMatchesNativeWordWidth(t *testing.T) {
	require.Len(t, encodeKey[int](0), int(unsafe.Sizeof(int(0))))
}

func TestKeyStringFormatsHexTuples(t *testing.T) {
	require.Equal(t, "[]", keyString(nil))
	require.Equal(t, "[00,FF]", keyString([]byte{0x00, 0xFF}))
}

func lessBytes(a, b []byte) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
