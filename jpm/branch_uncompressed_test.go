package jpm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBranchUncompressedDirectIndexing(t *testing.T) {
	n := newBranchUncompressed[int]()
	for b := 0; b < 256; b++ {
		out := n.insert([]byte{byte(b), 0}, b*2)
		require.False(t, out.Replaced)
	}
	for b := 0; b < 256; b++ {
		v, ok := n.get([]byte{byte(b), 0})
		require.True(t, ok)
		require.Equal(t, b*2, v)
	}
}

func TestBranchUncompressedAdoptFromBitmap(t *testing.T) {
	bb := newBranchBitmap[string]()
	bb.insert([]byte{7, 0}, "seven")
	bb.insert([]byte{250, 0}, "two-fifty")

	flat := bb.promote()
	v, ok := flat.get([]byte{7, 0})
	require.True(t, ok)
	require.Equal(t, "seven", v)
	v, ok = flat.get([]byte{250, 0})
	require.True(t, ok)
	require.Equal(t, "two-fifty", v)
}

func TestBranchUncompressedRemove(t *testing.T) {
	n := newBranchUncompressed[int]()
	n.insert([]byte{1, 0}, 11)

	out := n.remove([]byte{1, 0})
	require.True(t, out.Removed)
	require.Equal(t, 11, out.Value)

	_, ok := n.get([]byte{1, 0})
	require.False(t, ok)
}
