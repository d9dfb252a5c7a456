package jpm

import "github.com/TomTonic/judymap/internal/proto"

// LeafBitmap is the JPM's terminal, last-byte node: a 256-bit occupancy
// bitmap plus a 256-slot value array. Grounds spec.md §4.7, the spec's
// hardest safety point.
//
// Go gives every LeafBitmap[V]{} a zeroed, already-initialized 256-element
// value array — there is no MaybeUninit equivalent to reach for, and none
// is needed for memory safety (the GC never cares whether a slot "really"
// holds live data). What still matters, and what this type enforces, is
// the spec's occupancy discipline: a slot is only ever read when its
// bitmap bit is set, and a slot's value is explicitly zeroed the moment
// its bit is cleared, so a removed or overwritten V's last reference does
// not linger reachable from this node after callers expect it to be gone.
type LeafBitmap[V any] struct {
	occupied bitmap256
	values   [256]V
}

func newLeafBitmap[V any]() *LeafBitmap[V] {
	return &LeafBitmap[V]{}
}

func (n *LeafBitmap[V]) get(key []byte) (V, bool) {
	b := key[0]
	if !n.occupied.get(b) {
		var zero V
		return zero, false
	}
	return n.values[b], true
}

func (n *LeafBitmap[V]) getMut(key []byte) *V {
	b := key[0]
	if !n.occupied.get(b) {
		return nil
	}
	return &n.values[b]
}

func (n *LeafBitmap[V]) insert(key []byte, value V) proto.InsertOutcome[V] {
	b := key[0]
	if n.occupied.get(b) {
		old := n.values[b]
		n.values[b] = value
		return proto.InsertSuccess(old, true)
	}
	n.values[b] = value
	n.occupied.set(b)
	var zero V
	return proto.InsertSuccess(zero, false)
}

func (n *LeafBitmap[V]) remove(key []byte) proto.RemoveOutcome[V] {
	b := key[0]
	if !n.occupied.get(b) {
		var zero V
		return proto.RemoveSuccess(zero, false)
	}
	if n.occupied.count() == 1 {
		// b is the only occupied slot: removing it empties this leaf
		// entirely. Defer the actual clear to removeLast so the caller's
		// InnerPtr can demote the slot back to Empty in the same step.
		return proto.RemoveDownsize[V]()
	}
	old := n.values[b]
	var zero V
	n.values[b] = zero
	n.occupied.clear(b)
	return proto.RemoveSuccess(old, true)
}

// removeLast clears the sole remaining occupied slot (key[0], which the
// preceding remove call already verified is the only one set) and returns
// its value. Only ever called by InnerPtr.shrinkRemove after remove
// reported Downsize.
func (n *LeafBitmap[V]) removeLast(key []byte) V {
	b := key[0]
	old := n.values[b]
	var zero V
	n.values[b] = zero
	n.occupied.clear(b)
	return old
}
