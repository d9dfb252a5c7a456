package jpm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBranchLinearInsertGetTwoByteKeys(t *testing.T) {
	n := newBranchLinear[string]()

	out := n.insert([]byte{1, 10}, "a")
	require.False(t, out.Replaced)
	out = n.insert([]byte{2, 20}, "b")
	require.False(t, out.Replaced)

	v, ok := n.get([]byte{1, 10})
	require.True(t, ok)
	require.Equal(t, "a", v)

	v, ok = n.get([]byte{2, 20})
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = n.get([]byte{3, 30})
	require.False(t, ok)
}

func TestBranchLinearStaysSorted(t *testing.T) {
	n := newBranchLinear[int]()
	order := []byte{5, 1, 9, 3, 7}
	for _, b := range order {
		n.insert([]byte{b, 0}, int(b))
	}
	require.Equal(t, []byte{1, 3, 5, 7, 9}, n.children.Keys())
}

func TestBranchLinearResizeAtCapacity(t *testing.T) {
	n := newBranchLinear[int]()
	for b := byte(0); b < maxLinearChildren; b++ {
		out := n.insert([]byte{b, 0}, int(b))
		require.False(t, out.Resized)
	}
	require.True(t, n.children.Full())

	out := n.insert([]byte{maxLinearChildren, 0}, 99)
	require.True(t, out.Resized)
	require.Equal(t, 99, out.Pending)
}

func TestBranchLinearExpandPreservesEntries(t *testing.T) {
	n := newBranchLinear[int]()
	for b := byte(0); b < maxLinearChildren; b++ {
		n.insert([]byte{b, 0}, int(b)*10)
	}
	next := n.expand([]byte{maxLinearChildren, 0}, maxLinearChildren*10)

	for b := byte(0); b <= maxLinearChildren; b++ {
		v, ok := next.get([]byte{b, 0})
		require.True(t, ok, "byte %d missing after expand", b)
		require.Equal(t, int(b)*10, v)
	}
}

func TestBranchLinearRemove(t *testing.T) {
	n := newBranchLinear[string]()
	n.insert([]byte{1, 0}, "a")
	n.insert([]byte{2, 0}, "b")

	out := n.remove([]byte{1, 0})
	require.True(t, out.Removed)
	require.Equal(t, "a", out.Value)
	require.Equal(t, 1, n.children.Len())

	_, ok := n.get([]byte{1, 0})
	require.False(t, ok)

	out = n.remove([]byte{1, 0})
	require.False(t, out.Removed)
}
