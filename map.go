// Package judymap provides an ordered map keyed by fixed-width integers,
// backed by an adaptive digital trie. Small populations are held directly
// in a short chain of specialized leaves; once a key's population grows
// past that chain's capacity, storage promotes into a byte-wise trie whose
// node shape adapts to how densely each branch is populated.
package judymap

// Map is an ordered map from integer keys of type K to values of type V.
// The zero value is an empty map ready to use; New returns a pointer to one.
type Map[K Integer, V any] struct {
	r root[K, V]
}

// New returns an empty Map.
func New[K Integer, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Get returns the value stored for key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.r.get(key)
}

// GetMut returns a pointer into the slot holding key's value, allowing
// in-place mutation without a Get/Insert round trip. Returns nil if key is
// absent. The pointer is only valid until the next Insert or Remove call,
// either of which may move the key into a new node shape.
func (m *Map[K, V]) GetMut(key K) *V {
	return m.r.getMut(key)
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.r.get(key)
	return ok
}

// Insert stores value for key, returning the previous value (if any) and
// whether key already existed.
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	return m.r.insert(key, value)
}

// Remove deletes key, returning its value (if any) and whether it was
// present.
func (m *Map[K, V]) Remove(key K) (value V, removed bool) {
	return m.r.remove(key)
}

// Len returns the number of entries currently stored.
func (m *Map[K, V]) Len() int {
	return m.r.len()
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.r.len() == 0
}

// MemoryUsage estimates the number of bytes of heap memory this Map is
// currently retaining, including the root struct itself.
func (m *Map[K, V]) MemoryUsage() uintptr {
	return rootMemoryUsage(&m.r)
}
