// Package cimap provides string-keyed maps whose keys compare
// case-insensitively. The casing of the first key seen is preserved and
// reported by Keys; later writes under any casing update the same entry.
package cimap

import "strings"

type entry[V any] struct {
	key   string // casing as first seen
	value V
}

// Map is a case-insensitive string-keyed map with values of generic type V.
// It is not safe for concurrent use; see SafeMap.
type Map[V any] struct {
	items map[string]entry[V]
}

// New creates and returns a new empty Map instance with the specified
// value type.
func New[V any]() *Map[V] {
	return &Map[V]{items: make(map[string]entry[V])}
}

// Get retrieves the value associated with the given key.
// It returns the value and a boolean indicating whether the key was present.
func (m *Map[V]) Get(key string) (V, bool) {
	e, ok := m.items[fold(key)]

	return e.value, ok
}

// GetOrSet retrieves the value associated with the given key.
// It returns the value and a boolean indicating whether the key was present.
// Only if it is not set yet it will assign the new value.
func (m *Map[V]) GetOrSet(key string, value V) (V, bool) {
	f := fold(key)

	e, ok := m.items[f]
	if !ok {
		m.items[f] = entry[V]{key: key, value: value}
	}

	return e.value, ok
}

// Has reports whether the key is present under any casing.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.items[fold(key)]

	return ok
}

// Set stores the value under the given key. The casing of the first write
// is kept as the canonical key reported by Keys.
func (m *Map[V]) Set(key string, value V) {
	f := fold(key)

	if e, ok := m.items[f]; ok {
		e.value = value
		m.items[f] = e

		return
	}

	m.items[f] = entry[V]{key: key, value: value}
}

// Delete removes the value associated with the given key.
func (m *Map[V]) Delete(key string) {
	delete(m.items, fold(key))
}

// Len returns the number of key-value pairs in the map.
func (m *Map[V]) Len() int {
	return len(m.items)
}

// Keys returns a slice of all the keys in the map, in their first-seen
// casing.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, len(m.items))

	for _, e := range m.items {
		keys = append(keys, e.key)
	}

	return keys
}

// Values returns a slice of all the values in the map.
func (m *Map[V]) Values() []V {
	out := make([]V, 0, len(m.items))

	for _, e := range m.items {
		out = append(out, e.value)
	}

	return out
}

// Clear removes all entries.
func (m *Map[V]) Clear() {
	m.items = make(map[string]entry[V])
}

// fold returns the canonical form used for key comparison.
func fold(key string) string {
	return strings.ToLower(key)
}
