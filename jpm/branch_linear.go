package jpm

import (
	"github.com/TomTonic/judymap/internal/lockstep"
	"github.com/TomTonic/judymap/internal/proto"
)

// maxLinearChildren bounds BranchLinear at 7 entries, per spec.
const maxLinearChildren = 7

// BranchLinear holds up to 7 (child-byte, inner-pointer) pairs scanned
// linearly. Grounds spec.md §4.4; built on the shared lockstep array the
// same way VecLeaf is.
type BranchLinear[V any] struct {
	children lockstep.Array[byte, InnerPtr[V]]
}

func newBranchLinear[V any]() *BranchLinear[V] {
	return &BranchLinear[V]{children: lockstep.New[byte, InnerPtr[V]](maxLinearChildren)}
}

func (n *BranchLinear[V]) find(b byte) int {
	keys := n.children.Keys()
	for i, k := range keys {
		if k == b {
			return i
		}
	}
	return -1
}

// sortedInsertIndex returns the index at which b should be inserted to
// keep the byte array ascending.
func (n *BranchLinear[V]) sortedInsertIndex(b byte) int {
	keys := n.children.Keys()
	for i, k := range keys {
		if k > b {
			return i
		}
	}
	return len(keys)
}

func (n *BranchLinear[V]) get(key []byte) (V, bool) {
	idx := n.find(key[0])
	if idx < 0 {
		var zero V
		return zero, false
	}
	return n.children.ValueAt(idx).Get(key[1:])
}

func (n *BranchLinear[V]) getMut(key []byte) *V {
	idx := n.find(key[0])
	if idx < 0 {
		return nil
	}
	return n.children.ValueAt(idx).GetMut(key[1:])
}

func (n *BranchLinear[V]) insert(key []byte, value V) proto.InsertOutcome[V] {
	b := key[0]
	if idx := n.find(b); idx >= 0 {
		previous, replaced := n.children.ValueAt(idx).Insert(key[1:], value)
		return proto.InsertSuccess(previous, replaced)
	}
	if n.children.Full() {
		return proto.InsertResize[V](value)
	}
	at := n.sortedInsertIndex(b)
	ok, _ := n.children.Insert(at, b, newEmpty[V]())
	if !ok {
		// Full() above already guarantees room; this cannot happen.
		panic("jpm: BranchLinear insert capacity check inconsistent")
	}
	previous, replaced := n.children.ValueAt(at).Insert(key[1:], value)
	return proto.InsertSuccess(previous, replaced)
}

// expand drains this node's entries into a fresh BranchBitmap and inserts
// key/value into it, per spec.md §4.4.
func (n *BranchLinear[V]) expand(key []byte, value V) *BranchBitmap[V] {
	next := newBranchBitmap[V]()
	keys := n.children.Keys()
	values := n.children.Values()
	for i, b := range keys {
		next.adopt(b, values[i])
	}
	next.insert(key, value)
	return next
}

func (n *BranchLinear[V]) remove(key []byte) proto.RemoveOutcome[V] {
	idx := n.find(key[0])
	if idx < 0 {
		var zero V
		return proto.RemoveSuccess(zero, false)
	}
	child := n.children.ValueAt(idx)
	value, removed := child.Remove(key[1:])
	if removed && child.IsEmpty() {
		n.children.Remove(idx)
	}
	return proto.RemoveSuccess(value, removed)
}
