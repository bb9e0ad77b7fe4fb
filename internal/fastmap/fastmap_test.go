package fastmap

import (
	"math/rand"
	"testing"
)

// Test basic functionality
func TestMap(t *testing.T) {
	m := &Map[string]{}

	// Test empty map
	if _, ok := m.Get(1); ok {
		t.Error("Expected miss for empty map")
	}

	m.Set(1, "one")
	m.Set(2, "two")

	if v, ok := m.Get(1); !ok || v != "one" {
		t.Error("Get(1) failed")
	}
	if v, ok := m.Get(2); !ok || v != "two" {
		t.Error("Get(2) failed")
	}
	if _, ok := m.Get(3); ok {
		t.Error("Get(3) should miss")
	}

	// Test update
	m.Set(1, "uno")
	if v, _ := m.Get(1); v != "uno" {
		t.Error("Update failed")
	}

	// Key zero must be usable
	m.Set(0, "zero")
	if v, ok := m.Get(0); !ok || v != "zero" {
		t.Error("Get(0) failed")
	}

	// Test len
	if m.Len() != 3 {
		t.Errorf("Expected len=3, got %d", m.Len())
	}

	// Test clear
	m.Clear()
	if m.Len() != 0 {
		t.Error("Clear failed")
	}
	if _, ok := m.Get(1); ok {
		t.Error("Get after clear should miss")
	}
}

// Test with many entries to trigger growth
func TestMapGrowth(t *testing.T) {
	m := &Map[int]{}

	n := 10000
	for i := 0; i < n; i++ {
		m.Set(uint32(i), i*10)
	}

	if m.Len() != n {
		t.Errorf("Expected len=%d, got %d", n, m.Len())
	}

	// Verify all values survive growth
	for i := 0; i < n; i++ {
		if v, ok := m.Get(uint32(i)); !ok || v != i*10 {
			t.Fatalf("Get(%d) = %d, %v after growth", i, v, ok)
		}
	}
}

// Test with random sparse keys (exercises probing)
func TestMapRandomKeys(t *testing.T) {
	m := &Map[uint32]{}
	rng := rand.New(rand.NewSource(42))

	ref := make(map[uint32]uint32)
	for i := 0; i < 5000; i++ {
		k := rng.Uint32()
		ref[k] = uint32(i)
		m.Set(k, uint32(i))
	}

	if m.Len() != len(ref) {
		t.Errorf("Expected len=%d, got %d", len(ref), m.Len())
	}

	for k, want := range ref {
		if v, ok := m.Get(k); !ok || v != want {
			t.Fatalf("Get(%d) = %d, %v; want %d", k, v, ok, want)
		}
	}
}

func TestMapForEach(t *testing.T) {
	m := &Map[int]{}
	for i := 0; i < 100; i++ {
		m.Set(uint32(i), i)
	}

	seen := 0
	m.ForEach(func(k uint32, v int) {
		if int(k) != v {
			t.Errorf("ForEach mismatch: key=%d value=%d", k, v)
		}
		seen++
	})
	if seen != 100 {
		t.Errorf("ForEach visited %d entries, want 100", seen)
	}
}
