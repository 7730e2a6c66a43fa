package cimap

import "testing"

func TestMapCaseInsensitiveLookup(t *testing.T) {
	m := New[int]()
	m.Set("Hello", 1)

	tests := []struct {
		name string
		key  string
		want int
		ok   bool
	}{
		{"exact casing", "Hello", 1, true},
		{"lower casing", "hello", 1, true},
		{"upper casing", "HELLO", 1, true},
		{"mixed casing", "hElLo", 1, true},
		{"absent key", "world", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Get(tt.key)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Get(%q) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMapSetUpdatesSameEntry(t *testing.T) {
	m := New[string]()
	m.Set("Key", "first")
	m.Set("KEY", "second")

	if got := m.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1", got)
	}

	if got, _ := m.Get("key"); got != "second" {
		t.Errorf("Get(key) = %q, want %q", got, "second")
	}
}

func TestMapKeysPreserveFirstSeenCasing(t *testing.T) {
	m := New[int]()
	m.Set("Content-Type", 1)
	m.Set("content-type", 2)

	keys := m.Keys()
	if len(keys) != 1 || keys[0] != "Content-Type" {
		t.Errorf("Keys() = %v, want [Content-Type]", keys)
	}
}

func TestMapGetOrSet(t *testing.T) {
	m := New[int]()

	if _, ok := m.GetOrSet("key", 1); ok {
		t.Error("GetOrSet on absent key reported present")
	}

	got, ok := m.GetOrSet("KEY", 2)
	if !ok || got != 1 {
		t.Errorf("GetOrSet(KEY, 2) = (%d, %v), want (1, true)", got, ok)
	}

	if got, _ := m.Get("key"); got != 1 {
		t.Errorf("Get(key) = %d, want 1 (second GetOrSet must not overwrite)", got)
	}
}

func TestMapDelete(t *testing.T) {
	m := New[int]()
	m.Set("Hello", 1)
	m.Delete("HELLO")

	if m.Has("hello") {
		t.Error("key still present after Delete under different casing")
	}

	// Deleting an absent key is a no-op.
	m.Delete("missing")
}

func TestMapValuesAndClear(t *testing.T) {
	m := New[int]()
	m.Set("a", 1)
	m.Set("b", 2)

	if got := len(m.Values()); got != 2 {
		t.Errorf("len(Values()) = %d, want 2", got)
	}

	m.Clear()

	if got := m.Len(); got != 0 {
		t.Errorf("Len() after Clear = %d, want 0", got)
	}
}
