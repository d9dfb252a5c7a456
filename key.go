package judymap

import (
	"strings"
	"unsafe"
)

// Integer is the set of fixed-width integer types usable as Map/Set keys.
// Width and signedness are both derived from K at compile time; there is no
// runtime dispatch on key type.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// isSigned probes K's signedness: a zero value of a
// signed type minus one is negative, of an unsigned type it wraps to the
// type's maximum.
func isSigned[K Integer]() bool {
	var zero K
	return zero-1 < zero
}

// width reports the number of bytes K's in-memory representation occupies.
// encodeKey/decodeKey use this to produce exactly that many big-endian
// bytes, so `int8` keys become 1-byte trie paths and `int64` keys become
// 8-byte trie paths, rather than every width paying for a uniform 8 bytes.
func width[K Integer]() int {
	var zero K
	return int(unsafe.Sizeof(zero))
}

// encodeKey renders k as a big-endian byte slice whose length is K's
// natural width. Signed values are biased by 1<<(8*width-1) (with wrapping
// two's-complement arithmetic) before encoding, so that lexicographic
// byte-order of the result matches numeric order of k. Unsigned values are
// encoded as-is: their bit pattern is already order-preserving.
func encodeKey[K Integer](k K) []byte {
	w := width[K]()
	out := make([]byte, w)
	u := uint64(k)
	if isSigned[K]() {
		u += uint64(1) << (8*w - 1)
	}
	for i := w - 1; i >= 0; i-- {
		out[i] = byte(u)
		u >>= 8
	}
	return out
}

// decodeKey is the inverse of encodeKey.
func decodeKey[K Integer](b []byte) K {
	var u uint64
	for _, by := range b {
		u = u<<8 | uint64(by)
	}
	w := width[K]()
	if isSigned[K]() {
		u -= uint64(1) << (8*w - 1)
	}
	return K(u)
}

// keyString formats a byte-encoded key as uppercase hex tuples, e.g.
// "[01,AB,00]". Used by diagnostics, not by the trie itself.
func keyString(k []byte) string {
	if len(k) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	const hex = "0123456789ABCDEF"
	for i, b := range k {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(hex[b>>4])
		sb.WriteByte(hex[b&0x0F])
	}
	sb.WriteByte(']')
	return sb.String()
}
