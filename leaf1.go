package judymap

import "github.com/TomTonic/judymap/internal/proto"

// leaf1 is the root shape holding exactly one entry. It is the first
// non-empty rung of the root-leaf chain: Empty -> leaf1 -> leaf2 ->
// vecLeaf -> jpmRoot.
type leaf1[K Integer, V any] struct {
	key   K
	value V
}

func newLeaf1[K Integer, V any](key K, value V) *leaf1[K, V] {
	return &leaf1[K, V]{key: key, value: value}
}

func (l *leaf1[K, V]) get(key K) (V, bool) {
	if key == l.key {
		return l.value, true
	}
	var zero V
	return zero, false
}

func (l *leaf1[K, V]) getMut(key K) *V {
	if key == l.key {
		return &l.value
	}
	return nil
}

// insert replaces the held value in place if key matches; any other key
// means leaf1 has no room and the caller must expand to leaf2.
func (l *leaf1[K, V]) insert(key K, value V) proto.InsertOutcome[V] {
	if key == l.key {
		previous := l.value
		l.value = value
		return proto.InsertSuccess(previous, true)
	}
	return proto.InsertResize(value)
}

// expand folds this single entry and the pending one into a leaf2.
func (l *leaf1[K, V]) expand(key K, value V) *leaf2[K, V] {
	return newLeaf2(l.key, l.value, key, value)
}

// remove reports a Downsize without mutating state when key matches: the
// whole leaf1 is about to collapse to Empty, and the caller reads the
// departing value via removeLast before discarding this node.
func (l *leaf1[K, V]) remove(key K) proto.RemoveOutcome[V] {
	if key != l.key {
		var zero V
		return proto.RemoveSuccess(zero, false)
	}
	return proto.RemoveDownsize[V]()
}

func (l *leaf1[K, V]) removeLast() V {
	return l.value
}

func (l *leaf1[K, V]) len() int { return 1 }
