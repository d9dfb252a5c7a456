// Package lockstep provides a fixed-capacity pair of parallel arrays that
// are always pushed, inserted into, and removed from together, so a key at
// index i and its value at index i never drift apart. It is the shared
// utility behind VecLeaf and BranchLinear.
//
// Go has no const generics, so the fixed capacity the original design
// calls for ([K; 31] / [V; 31] in the source this was ported from) is a
// runtime field instead of a type parameter, backed by slices allocated
// once at construction and never regrown.
package lockstep

import "github.com/TomTonic/judymap/internal/proto"

// Array holds two same-length slices, keys and values, sharing one logical
// length and one fixed capacity. The zero value is not usable; use New.
type Array[K any, V any] struct {
	keys     []K
	values   []V
	capacity int
}

// New returns an empty Array with the given fixed capacity.
func New[K any, V any](capacity int) Array[K, V] {
	return Array[K, V]{
		keys:     make([]K, 0, capacity),
		values:   make([]V, 0, capacity),
		capacity: capacity,
	}
}

// Len returns the number of occupied slots.
func (a *Array[K, V]) Len() int { return len(a.keys) }

// Cap returns the fixed capacity.
func (a *Array[K, V]) Cap() int { return a.capacity }

// Full reports whether the array has no room for another element.
func (a *Array[K, V]) Full() bool { return len(a.keys) == a.capacity }

// Keys returns the live key slice (length Len(), not Cap()). Callers must
// not retain it across a mutating call.
func (a *Array[K, V]) Keys() []K { return a.keys }

// Values returns the live value slice (length Len(), not Cap()). Callers
// must not retain it across a mutating call.
func (a *Array[K, V]) Values() []V { return a.values }

// ValueAt returns a pointer to the value at index i, allowing in-place
// mutation without a full Remove/Insert round trip.
func (a *Array[K, V]) ValueAt(i int) *V { return &a.values[i] }

// Push appends key/value at the end. Returns an Overflow if the array is
// already at capacity; the caller's pending entry is handed back unused.
func (a *Array[K, V]) Push(key K, value V) (ok bool, overflow proto.Overflow[K, V]) {
	return a.Insert(len(a.keys), key, value)
}

// Insert places key/value at index at, shifting the suffix right by one.
// Returns an Overflow carrying key/value back to the caller if the array
// is already full; no partial shift happens in that case.
func (a *Array[K, V]) Insert(at int, key K, value V) (ok bool, overflow proto.Overflow[K, V]) {
	if len(a.keys) == a.capacity {
		return false, proto.Overflow[K, V]{Key: key, Value: value}
	}
	a.keys = append(a.keys, key)
	a.values = append(a.values, value)
	copy(a.keys[at+1:], a.keys[at:len(a.keys)-1])
	copy(a.values[at+1:], a.values[at:len(a.values)-1])
	a.keys[at] = key
	a.values[at] = value
	return true, proto.Overflow[K, V]{}
}

// Remove deletes the entry at index at, shifting the suffix left by one,
// and returns the removed key/value.
func (a *Array[K, V]) Remove(at int) (key K, value V) {
	key = a.keys[at]
	value = a.values[at]
	var zeroK K
	var zeroV V
	copy(a.keys[at:], a.keys[at+1:])
	copy(a.values[at:], a.values[at+1:])
	last := len(a.keys) - 1
	a.keys[last] = zeroK
	a.values[last] = zeroV
	a.keys = a.keys[:last]
	a.values = a.values[:last]
	return key, value
}

// Pop removes and returns the last entry. Callers must check Len() > 0.
func (a *Array[K, V]) Pop() (key K, value V) {
	return a.Remove(len(a.keys) - 1)
}
