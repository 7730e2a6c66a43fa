package cimap

import "sync"

// SafeMap is a thread-safe case-insensitive map with string keys and
// generic type V values.
type SafeMap[V any] struct {
	mu    *sync.RWMutex
	items map[string]entry[V]
}

// NewSafe creates and returns a new empty SafeMap instance with the
// specified value type.
func NewSafe[V any]() SafeMap[V] {
	return SafeMap[V]{
		items: make(map[string]entry[V]),
		mu:    new(sync.RWMutex),
	}
}

// Get retrieves the value associated with the given key from the map.
// It returns the value and a boolean indicating whether the key was present.
func (m *SafeMap[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.items[fold(key)]

	return e.value, ok
}

// GetOrSet retrieves the value associated with the given key from the map.
// It returns the value and a boolean indicating whether the key was present.
// Only if it is not set yet it will assign the new value.
func (m *SafeMap[V]) GetOrSet(key string, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := fold(key)

	e, ok := m.items[f]
	if !ok {
		m.items[f] = entry[V]{key: key, value: value}
	}

	return e.value, ok
}

// GetAll returns a list of all values.
func (m *SafeMap[V]) GetAll() []V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]V, 0, len(m.items))

	for _, e := range m.items {
		out = append(out, e.value)
	}

	return out
}

// GetMap returns a copy of the contents, keyed by the first-seen casing.
func (m *SafeMap[V]) GetMap() map[string]V {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]V, len(m.items))

	for _, e := range m.items {
		out[e.key] = e.value
	}

	return out
}

// Set stores the value associated with the given key in the map. The
// casing of the first write is kept as the canonical key.
func (m *SafeMap[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f := fold(key)

	if e, ok := m.items[f]; ok {
		e.value = value
		m.items[f] = e

		return
	}

	m.items[f] = entry[V]{key: key, value: value}
}

// SetMap replaces the contents with the provided map.
func (m *SafeMap[V]) SetMap(n map[string]V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = make(map[string]entry[V], len(n))

	for key, value := range n {
		m.items[fold(key)] = entry[V]{key: key, value: value}
	}
}

// Delete removes the value associated with the given key from the map.
func (m *SafeMap[V]) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, fold(key))
}

// Length returns the number of key-value pairs in the map.
func (m *SafeMap[V]) Length() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.items)
}

// Keys returns a slice of all the keys in the map, in their first-seen
// casing.
func (m *SafeMap[V]) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.items))

	for _, e := range m.items {
		keys = append(keys, e.key)
	}

	return keys
}
