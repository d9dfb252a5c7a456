package judymap

import "github.com/TomTonic/judymap/jpm"

// jpmRoot is the thin boundary between the typed K keys used everywhere
// above the root-leaf chain and the byte-path trie in jpm. It encodes K to
// its big-endian byte form on every operation and caches the live entry
// count so Len() never has to walk the trie.
type jpmRoot[K Integer, V any] struct {
	head   jpm.InnerPtr[V]
	length int
}

func newJPMRoot[K Integer, V any]() *jpmRoot[K, V] {
	return &jpmRoot[K, V]{}
}

func (r *jpmRoot[K, V]) get(key K) (V, bool) {
	return r.head.Get(encodeKey(key))
}

func (r *jpmRoot[K, V]) getMut(key K) *V {
	return r.head.GetMut(encodeKey(key))
}

func (r *jpmRoot[K, V]) insert(key K, value V) (previous V, replaced bool) {
	previous, replaced = r.head.Insert(encodeKey(key), value)
	if !replaced {
		r.length++
	}
	return previous, replaced
}

func (r *jpmRoot[K, V]) remove(key K) (value V, removed bool) {
	value, removed = r.head.Remove(encodeKey(key))
	if removed {
		r.length--
	}
	return value, removed
}

func (r *jpmRoot[K, V]) len() int { return r.length }
