// Package jpm implements the "Judy Pointer Map" inner trie: the digital
// trie over key bytes that backs populations too large for the root-leaf
// chain. Every operation here works on raw encoded key bytes, never on the
// original typed key — that boundary lives one layer up, in the root
// package's codec.
//
// Node-kind dispatch follows the teacher repo's art package technique
// (art/common_node_functions.go, art/get_child.go): a tag byte picks the
// concrete node type, and unsafe.Pointer recovers it. The one deliberate
// difference is where the tag and population live: the teacher stores its
// tag inside the node (a meta byte on Node[T]); here both tag and
// population live in the InnerPtr cell one level up, because the spec this
// trie implements requires population bookkeeping to be parent-side so a
// node can be moved or reshaped without re-deriving its own population.
package jpm

import (
	"unsafe"

	"github.com/TomTonic/judymap/internal/proto"
)

type nodeTag uint8

const (
	tagEmpty nodeTag = iota
	tagBranchLinear
	tagBranchBitmap
	tagBranchUncompressed
	tagLeafBitmap
)

func (t nodeTag) String() string {
	switch t {
	case tagEmpty:
		return "Empty"
	case tagBranchLinear:
		return "BranchLinear"
	case tagBranchBitmap:
		return "BranchBitmap"
	case tagBranchUncompressed:
		return "BranchUncompressed"
	case tagLeafBitmap:
		return "LeafBitmap"
	default:
		return "InvalidNodeTag"
	}
}

// InnerPtr is a single trie cell: a shape tag, the live population of the
// subtree beneath it, and a pointer to the concrete node (nil for Empty).
// The zero value is a valid Empty cell.
type InnerPtr[V any] struct {
	tag  nodeTag
	pop  uint32
	node unsafe.Pointer
}

// Population returns the number of entries reachable beneath this pointer.
func (p *InnerPtr[V]) Population() uint32 { return p.pop }

// IsEmpty reports whether the pointer holds no subtree.
func (p *InnerPtr[V]) IsEmpty() bool { return p.tag == tagEmpty }

func branchLinearOf[V any](p *InnerPtr[V]) *BranchLinear[V] {
	return (*BranchLinear[V])(p.node)
}

func branchBitmapOf[V any](p *InnerPtr[V]) *BranchBitmap[V] {
	return (*BranchBitmap[V])(p.node)
}

func branchUncompressedOf[V any](p *InnerPtr[V]) *BranchUncompressed[V] {
	return (*BranchUncompressed[V])(p.node)
}

func leafBitmapOf[V any](p *InnerPtr[V]) *LeafBitmap[V] {
	return (*LeafBitmap[V])(p.node)
}

// Get looks up key (the remaining, not-yet-consumed suffix of the encoded
// key) beneath this pointer.
func (p *InnerPtr[V]) Get(key []byte) (V, bool) {
	switch p.tag {
	case tagEmpty:
		var zero V
		return zero, false
	case tagBranchLinear:
		return branchLinearOf(p).get(key)
	case tagBranchBitmap:
		return branchBitmapOf(p).get(key)
	case tagBranchUncompressed:
		return branchUncompressedOf(p).get(key)
	case tagLeafBitmap:
		return leafBitmapOf(p).get(key)
	default:
		panic("jpm: invalid inner pointer tag " + p.tag.String())
	}
}

// GetMut looks up key and returns a pointer into the owning slot so the
// caller can mutate the stored value in place.
func (p *InnerPtr[V]) GetMut(key []byte) *V {
	switch p.tag {
	case tagEmpty:
		return nil
	case tagBranchLinear:
		return branchLinearOf(p).getMut(key)
	case tagBranchBitmap:
		return branchBitmapOf(p).getMut(key)
	case tagBranchUncompressed:
		return branchUncompressedOf(p).getMut(key)
	case tagLeafBitmap:
		return leafBitmapOf(p).getMut(key)
	default:
		panic("jpm: invalid inner pointer tag " + p.tag.String())
	}
}

// Insert places value at key beneath this pointer, promoting the node's
// shape and updating population as needed. Returns the previously stored
// value, if any.
func (p *InnerPtr[V]) Insert(key []byte, value V) (previous V, replaced bool) {
	var outcome proto.InsertOutcome[V]
	switch p.tag {
	case tagEmpty:
		outcome = proto.InsertResize[V](value)
	case tagBranchLinear:
		outcome = branchLinearOf(p).insert(key, value)
	case tagBranchBitmap:
		outcome = branchBitmapOf(p).insert(key, value)
	case tagBranchUncompressed:
		outcome = branchUncompressedOf(p).insert(key, value)
	case tagLeafBitmap:
		outcome = leafBitmapOf(p).insert(key, value)
	default:
		panic("jpm: invalid inner pointer tag " + p.tag.String())
	}

	if outcome.Resized {
		p.expand(key, outcome.Pending)
		return previous, false
	}
	if outcome.Replaced {
		return outcome.Previous, true
	}
	p.pop++
	if p.tag == tagBranchBitmap {
		p.promoteIfDense()
	}
	return previous, false
}

// branchBitmapPromoteThreshold resolves spec.md §9's open question about
// when BranchBitmap should promote to BranchUncompressed: once the node's
// live child count exceeds ~78% of the 256 possible byte slots, the
// subexpanse indirection no longer earns its keep over a flat array. See
// DESIGN.md for the full rationale.
const branchBitmapPromoteThreshold = 200

// promoteIfDense converts a BranchBitmap node to BranchUncompressed in
// place once it has crossed the density threshold. Unlike expand, this
// runs after an insert has already completed successfully, since
// BranchBitmap always has room for one more child and therefore never
// needs to defer the pending insert the way Resize does.
func (p *InnerPtr[V]) promoteIfDense() {
	bb := branchBitmapOf(p)
	if bb.childCount() <= branchBitmapPromoteThreshold {
		return
	}
	next := bb.promote()
	p.tag = tagBranchUncompressed
	p.node = unsafe.Pointer(next)
}

// expand promotes the node one shape up and stores value at key in it.
func (p *InnerPtr[V]) expand(key []byte, value V) {
	newPop := p.pop + 1
	switch p.tag {
	case tagEmpty:
		if len(key) == 1 {
			leaf := newLeafBitmap[V]()
			leaf.insert(key, value)
			p.tag = tagLeafBitmap
			p.node = unsafe.Pointer(leaf)
		} else {
			branch := newBranchLinear[V]()
			p.tag = tagBranchLinear
			p.node = unsafe.Pointer(branch)
			// The child InnerPtr this creates starts Empty too, and its
			// own Insert/expand recurses through this same case with a
			// one-byte-shorter key, cascading down to a LeafBitmap.
			branch.insert(key, value)
		}
	case tagBranchLinear:
		old := branchLinearOf(p)
		next := old.expand(key, value)
		p.tag = tagBranchBitmap
		p.node = unsafe.Pointer(next)
	case tagBranchBitmap:
		next := branchBitmapOf(p).promote()
		next.insert(key, value)
		p.tag = tagBranchUncompressed
		p.node = unsafe.Pointer(next)
	case tagBranchUncompressed:
		panic("jpm: BranchUncompressed is already the densest branch shape")
	case tagLeafBitmap:
		panic("jpm: LeafBitmap is already the densest leaf shape")
	default:
		panic("jpm: invalid inner pointer tag " + p.tag.String())
	}
	p.pop = newPop
}

// Remove deletes key from beneath this pointer, demoting the node's shape
// as needed. Returns the removed value, if any.
func (p *InnerPtr[V]) Remove(key []byte) (value V, removed bool) {
	var outcome proto.RemoveOutcome[V]
	switch p.tag {
	case tagEmpty:
		return value, false
	case tagBranchLinear:
		outcome = branchLinearOf(p).remove(key)
	case tagBranchBitmap:
		outcome = branchBitmapOf(p).remove(key)
	case tagBranchUncompressed:
		outcome = branchUncompressedOf(p).remove(key)
	case tagLeafBitmap:
		outcome = leafBitmapOf(p).remove(key)
	default:
		panic("jpm: invalid inner pointer tag " + p.tag.String())
	}

	if outcome.Downsized {
		v := p.shrinkRemove(key)
		return v, true
	}
	if outcome.Removed {
		p.pop--
	}
	return outcome.Value, outcome.Removed
}

// shrinkRemove demotes the node one shape down after a remove that is
// known to underflow it, and returns the removed value.
func (p *InnerPtr[V]) shrinkRemove(key []byte) V {
	switch p.tag {
	case tagLeafBitmap:
		v := leafBitmapOf(p).removeLast(key)
		p.tag = tagEmpty
		p.node = nil
		p.pop = 0
		return v
	default:
		panic("jpm: shrinkRemove is unreachable for tag " + p.tag.String())
	}
}

// newEmpty returns a freshly zeroed InnerPtr. Empty is a tag with a nil
// node pointer, so this allocates nothing.
func newEmpty[V any]() InnerPtr[V] {
	return InnerPtr[V]{}
}
