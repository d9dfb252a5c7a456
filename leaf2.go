package judymap

import "github.com/TomTonic/judymap/internal/proto"

// leaf2 holds exactly two entries, kept sorted by key so a future
// expansion into vecLeaf never has to re-sort them.
type leaf2[K Integer, V any] struct {
	keys   [2]K
	values [2]V
}

func newLeaf2[K Integer, V any](key1 K, value1 V, key2 K, value2 V) *leaf2[K, V] {
	if key1 < key2 {
		return &leaf2[K, V]{keys: [2]K{key1, key2}, values: [2]V{value1, value2}}
	}
	return &leaf2[K, V]{keys: [2]K{key2, key1}, values: [2]V{value2, value1}}
}

func (l *leaf2[K, V]) get(key K) (V, bool) {
	for i, k := range l.keys {
		if k == key {
			return l.values[i], true
		}
	}
	var zero V
	return zero, false
}

func (l *leaf2[K, V]) getMut(key K) *V {
	for i, k := range l.keys {
		if k == key {
			return &l.values[i]
		}
	}
	return nil
}

func (l *leaf2[K, V]) insert(key K, value V) proto.InsertOutcome[V] {
	for i, k := range l.keys {
		if k == key {
			previous := l.values[i]
			l.values[i] = value
			return proto.InsertSuccess(previous, true)
		}
	}
	return proto.InsertResize(value)
}

// expand drains this leaf's two sorted entries into a fresh vecLeaf and
// inserts the pending entry alongside them.
func (l *leaf2[K, V]) expand(key K, value V) *vecLeaf[K, V] {
	v := newVecLeaf[K, V]()
	for i := range l.keys {
		ok, overflow := v.array.Push(l.keys[i], l.values[i])
		if !ok {
			panic("vecLeaf overflowed while draining leaf2: " + keyString(encodeKey(overflow.Key)))
		}
	}
	out := v.insert(key, value)
	if out.Resized {
		panic("vecLeaf overflowed immediately after draining leaf2")
	}
	return v
}

// remove reports RemoveDownsize when key matches either entry, since leaf2
// always demotes to leaf1 on a successful remove (there is no shape between
// the two); removeLast then locates the departing key itself.
func (l *leaf2[K, V]) remove(key K) proto.RemoveOutcome[V] {
	for _, k := range l.keys {
		if k == key {
			return proto.RemoveDownsize[V]()
		}
	}
	var zero V
	return proto.RemoveSuccess(zero, false)
}

// removeLast collapses leaf2 to a leaf1 holding the surviving entry, and
// returns the removed value alongside it.
func (l *leaf2[K, V]) removeLast(key K) (survivor *leaf1[K, V], removed V) {
	if l.keys[0] == key {
		return newLeaf1(l.keys[1], l.values[1]), l.values[0]
	}
	return newLeaf1(l.keys[0], l.values[0]), l.values[1]
}

func (l *leaf2[K, V]) len() int { return 2 }
