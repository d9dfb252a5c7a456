package judymap

import "unsafe"

// rootMemoryUsage sums the size of the root cell itself plus whatever
// concrete struct it currently points at, recursing into the jpm trie via
// jpm.InnerPtr.MemoryUsage once storage has promoted that far.
func rootMemoryUsage[K Integer, V any](r *root[K, V]) uintptr {
	total := unsafe.Sizeof(*r)
	switch r.shape {
	case rootEmpty:
	case rootLeaf1:
		total += unsafe.Sizeof(*r.asLeaf1())
	case rootLeaf2:
		total += unsafe.Sizeof(*r.asLeaf2())
	case rootVecLeaf:
		v := r.asVecLeaf()
		total += unsafe.Sizeof(*v)
		total += uintptr(v.array.Cap()) * (unsafe.Sizeof(*new(K)) + unsafe.Sizeof(*new(V)))
	case rootJPM:
		j := r.asJPM()
		total += unsafe.Sizeof(*j)
		total += j.head.MemoryUsage()
	}
	return total
}
