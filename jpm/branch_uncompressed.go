package jpm

import "github.com/TomTonic/judymap/internal/proto"

// BranchUncompressed is a flat 256-slot array of inner pointers, all
// initially Empty. It is the densest branch shape: insert always has room,
// and expand/shrinkRemove are unreachable. Grounds spec.md §4.6.
type BranchUncompressed[V any] struct {
	child [256]InnerPtr[V]
}

func newBranchUncompressed[V any]() *BranchUncompressed[V] {
	return &BranchUncompressed[V]{}
}

func (n *BranchUncompressed[V]) get(key []byte) (V, bool) {
	return n.child[key[0]].Get(key[1:])
}

func (n *BranchUncompressed[V]) getMut(key []byte) *V {
	return n.child[key[0]].GetMut(key[1:])
}

func (n *BranchUncompressed[V]) insert(key []byte, value V) proto.InsertOutcome[V] {
	previous, replaced := n.child[key[0]].Insert(key[1:], value)
	return proto.InsertSuccess(previous, replaced)
}

// adopt places an already-built subtree directly into slot b, used when
// promoting a BranchBitmap into a fresh BranchUncompressed.
func (n *BranchUncompressed[V]) adopt(b byte, child InnerPtr[V]) {
	n.child[b] = child
}

func (n *BranchUncompressed[V]) remove(key []byte) proto.RemoveOutcome[V] {
	child := &n.child[key[0]]
	value, removed := child.Remove(key[1:])
	return proto.RemoveSuccess(value, removed)
}
