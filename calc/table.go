package calc

// PairKey addresses one entry of a SymmetricTable.
type PairKey struct {
	A, B string
}

// SymmetricTable maps unordered pairs to values. Only one direction of each
// pair needs to be stored; Lookup tries the reverse key on a miss.
type SymmetricTable[V any] struct {
	entries map[PairKey]V
}

// NewSymmetricTable copies entries into an immutable table.
func NewSymmetricTable[V any](entries map[PairKey]V) SymmetricTable[V] {
	m := make(map[PairKey]V, len(entries))
	for k, v := range entries {
		m[k] = v
	}
	return SymmetricTable[V]{entries: m}
}

// Lookup finds the value for (a, b) or (b, a).
func (t SymmetricTable[V]) Lookup(a, b string) (V, bool) {
	if v, ok := t.entries[PairKey{A: a, B: b}]; ok {
		return v, true
	}
	v, ok := t.entries[PairKey{A: b, B: a}]
	return v, ok
}

// Len is the number of stored entries.
func (t SymmetricTable[V]) Len() int {
	return len(t.entries)
}
