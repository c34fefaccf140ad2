// Package pkg provides small generic utilities for weave.
package pkg

// OrderedMap is a map that remembers the order in which keys were first
// inserted. Iteration via Keys/Range follows that order.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		values: make(map[K]V),
	}
}

// Len returns the number of stored keys.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Get returns the value for key and whether it is present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	value, ok := m.values[key]

	return value, ok
}

// Set stores value under key. A key keeps its original position when set again.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value
}

// Keys returns the keys in first-insertion order. The returned slice is the
// map's own backing slice and must not be mutated by the caller.
func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys
}

// Range calls fn for every entry in first-insertion order. Iteration stops at
// the first error, which is returned.
func (m *OrderedMap[K, V]) Range(fn func(key K, value V) error) error {
	for _, key := range m.keys {
		if err := fn(key, m.values[key]); err != nil {
			return err
		}
	}

	return nil
}
