package cimap

import (
	"fmt"
	"sync"
	"testing"
)

func TestSafeMapBasicOperations(t *testing.T) {
	m := NewSafe[int]()

	m.Set("Hello", 1)

	if got, ok := m.Get("HELLO"); !ok || got != 1 {
		t.Errorf("Get(HELLO) = (%d, %v), want (1, true)", got, ok)
	}

	if got := m.Length(); got != 1 {
		t.Errorf("Length() = %d, want 1", got)
	}

	m.Delete("hello")

	if _, ok := m.Get("Hello"); ok {
		t.Error("key still present after Delete")
	}
}

func TestSafeMapGetOrSet(t *testing.T) {
	m := NewSafe[string]()

	if _, ok := m.GetOrSet("Key", "first"); ok {
		t.Error("GetOrSet on absent key reported present")
	}

	got, ok := m.GetOrSet("KEY", "second")
	if !ok || got != "first" {
		t.Errorf("GetOrSet(KEY) = (%q, %v), want (first, true)", got, ok)
	}
}

func TestSafeMapGetMapKeyedByFirstSeenCasing(t *testing.T) {
	m := NewSafe[int]()
	m.Set("Content-Type", 1)
	m.Set("content-type", 2)

	out := m.GetMap()

	if len(out) != 1 {
		t.Fatalf("len(GetMap()) = %d, want 1", len(out))
	}
	if got, ok := out["Content-Type"]; !ok || got != 2 {
		t.Errorf("GetMap()[Content-Type] = (%d, %v), want (2, true)", got, ok)
	}
}

func TestSafeMapSetMap(t *testing.T) {
	m := NewSafe[int]()
	m.Set("old", 1)

	m.SetMap(map[string]int{"A": 1, "B": 2})

	if _, ok := m.Get("old"); ok {
		t.Error("SetMap did not replace previous contents")
	}

	if got, ok := m.Get("a"); !ok || got != 1 {
		t.Errorf("Get(a) = (%d, %v), want (1, true)", got, ok)
	}

	if got := m.Length(); got != 2 {
		t.Errorf("Length() = %d, want 2", got)
	}
}

func TestSafeMapConcurrentAccess(t *testing.T) {
	m := NewSafe[int]()

	const (
		goroutines = 8
		perWriter  = 200
	)

	var wg sync.WaitGroup
	wg.Add(goroutines * 2)

	for g := 0; g < goroutines; g++ {
		go func(g int) {
			defer wg.Done()

			for i := 0; i < perWriter; i++ {
				m.Set(fmt.Sprintf("Key-%d-%d", g, i), i)
			}
		}(g)

		go func(g int) {
			defer wg.Done()

			for i := 0; i < perWriter; i++ {
				m.Get(fmt.Sprintf("key-%d-%d", g, i))
				m.Length()
			}
		}(g)
	}

	wg.Wait()

	if got := m.Length(); got != goroutines*perWriter {
		t.Errorf("Length() = %d, want %d", got, goroutines*perWriter)
	}
}
