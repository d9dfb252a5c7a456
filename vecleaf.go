package judymap

import (
	"sort"

	"github.com/TomTonic/judymap/internal/lockstep"
	"github.com/TomTonic/judymap/internal/proto"
)

// vecLeafCapacity is the population ceiling of the root-leaf chain before
// it expands into the jpm trie proper.
const vecLeafCapacity = 31

// vecLeaf holds up to vecLeafCapacity entries in a single sorted lockstep
// array, searched by binary search. It is the last rung of the root-leaf
// chain before promotion to the jpm trie.
type vecLeaf[K Integer, V any] struct {
	array lockstep.Array[K, V]
}

func newVecLeaf[K Integer, V any]() *vecLeaf[K, V] {
	return &vecLeaf[K, V]{array: lockstep.New[K, V](vecLeafCapacity)}
}

func (v *vecLeaf[K, V]) search(key K) (index int, found bool) {
	keys := v.array.Keys()
	i := sort.Search(len(keys), func(i int) bool { return keys[i] >= key })
	if i < len(keys) && keys[i] == key {
		return i, true
	}
	return i, false
}

func (v *vecLeaf[K, V]) get(key K) (V, bool) {
	i, found := v.search(key)
	if !found {
		var zero V
		return zero, false
	}
	return v.array.Values()[i], true
}

func (v *vecLeaf[K, V]) getMut(key K) *V {
	i, found := v.search(key)
	if !found {
		return nil
	}
	return v.array.ValueAt(i)
}

func (v *vecLeaf[K, V]) insert(key K, value V) proto.InsertOutcome[V] {
	i, found := v.search(key)
	if found {
		previous := *v.array.ValueAt(i)
		*v.array.ValueAt(i) = value
		return proto.InsertSuccess(previous, true)
	}
	ok, overflow := v.array.Insert(i, key, value)
	if !ok {
		return proto.InsertResize(overflow.Value)
	}
	var zero V
	return proto.InsertSuccess(zero, false)
}

// expand builds the jpm trie head from this leaf's entries plus the
// pending one that didn't fit.
func (v *vecLeaf[K, V]) expand(key K, value V) *jpmRoot[K, V] {
	root := newJPMRoot[K, V]()
	for i, k := range v.array.Keys() {
		root.insert(k, v.array.Values()[i])
	}
	root.insert(key, value)
	return root
}

func (v *vecLeaf[K, V]) remove(key K) proto.RemoveOutcome[V] {
	i, found := v.search(key)
	if !found {
		var zero V
		return proto.RemoveSuccess(zero, false)
	}
	if v.array.Len() == 3 {
		return proto.RemoveDownsize[V]()
	}
	_, value := v.array.Remove(i)
	return proto.RemoveSuccess(value, true)
}

// removeLast collapses a 3-entry vecLeaf to a leaf2 holding the two
// remaining entries. Only called after remove reports Downsize, which
// only happens at exactly 3 entries.
func (v *vecLeaf[K, V]) removeLast(key K) (survivor *leaf2[K, V], removed V) {
	i, _ := v.search(key)
	_, value := v.array.Remove(i)
	keys := v.array.Keys()
	values := v.array.Values()
	return newLeaf2(keys[0], values[0], keys[1], values[1]), value
}

func (v *vecLeaf[K, V]) len() int { return v.array.Len() }
