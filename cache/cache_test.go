package cache

import (
	"fmt"
	"testing"

	"github.com/sharedcode/lists"
)

func pairs(kvs ...int) []lists.KeyValuePair[int, string] {
	r := make([]lists.KeyValuePair[int, string], 0, len(kvs))
	for _, k := range kvs {
		r = append(r, lists.KeyValuePair[int, string]{Key: k, Value: fmt.Sprintf("v%d", k)})
	}
	return r
}

func TestCache_SetGetDelete(t *testing.T) {
	c := NewCache[int, string](2, 10)

	c.Set(pairs(1, 2, 3))
	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", c.Count())
	}

	got := c.Get([]int{1, 3, 99})
	if got[0] != "v1" || got[1] != "v3" {
		t.Errorf("Get = %v, want v1 and v3", got)
	}
	// Missing keys yield zero values.
	if got[2] != "" {
		t.Errorf("missing key yielded %q", got[2])
	}

	c.Delete([]int{2, 99})
	if c.Count() != 2 {
		t.Errorf("Count() after delete = %d, want 2", c.Count())
	}
	if got := c.Get([]int{2}); got[0] != "" {
		t.Errorf("deleted key still resolves to %q", got[0])
	}
}

func TestCache_UpdateKeepsSingleEntry(t *testing.T) {
	c := NewCache[int, string](2, 10)
	c.Set(pairs(1))
	c.Set([]lists.KeyValuePair[int, string]{{Key: 1, Value: "updated"}})
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
	if got := c.Get([]int{1}); got[0] != "updated" {
		t.Errorf("Get = %q, want updated", got[0])
	}
}

func TestCache_EvictsLeastRecent(t *testing.T) {
	c := NewCache[int, string](2, 4)

	// Filling to capacity triggers eviction down below the cap.
	c.Set(pairs(1, 2, 3, 4))
	if c.IsFull() {
		t.Fatalf("cache still full after Set ran eviction")
	}
	// 1 was the least recently touched; it went first.
	if got := c.Get([]int{1}); got[0] != "" {
		t.Errorf("expected 1 evicted, got %q", got[0])
	}
}

func TestCache_GetBumpsRecency(t *testing.T) {
	c := NewCache[int, string](2, 4)
	c.Set(pairs(1, 2, 3))
	// Touch 1 so 2 becomes the eviction candidate.
	c.Get([]int{1})
	c.Set(pairs(4))
	if got := c.Get([]int{2}); got[0] != "" {
		t.Errorf("expected 2 evicted, got %q", got[0])
	}
	if got := c.Get([]int{1}); got[0] != "v1" {
		t.Errorf("recently touched 1 was evicted")
	}
}

func TestCache_SetBumpsRecency(t *testing.T) {
	c := NewCache[int, string](2, 4)
	c.Set(pairs(1, 2, 3))
	// Re-setting 1 bumps it; 2 becomes least recent.
	c.Set(pairs(1))
	c.Set(pairs(4))
	if got := c.Get([]int{2}); got[0] != "" {
		t.Errorf("expected 2 evicted, got %q", got[0])
	}
	if got := c.Get([]int{1}); got[0] != "v1" {
		t.Errorf("re-set 1 was evicted")
	}
}

func TestCache_Clear(t *testing.T) {
	c := NewCache[int, string](2, 10)
	c.Set(pairs(1, 2, 3))
	c.Clear()
	if c.Count() != 0 {
		t.Fatalf("Count() after Clear = %d", c.Count())
	}
	// Still usable after Clear.
	c.Set(pairs(7))
	if got := c.Get([]int{7}); got[0] != "v7" {
		t.Errorf("Get after Clear = %q, want v7", got[0])
	}
}

func TestCache_IsFull(t *testing.T) {
	c := NewCache[int, string](1, 3)
	if c.IsFull() {
		t.Fatalf("empty cache reports full")
	}
	// Bypass Set's auto-evict by checking right at the boundary.
	c.Set(pairs(1, 2))
	if c.IsFull() {
		t.Errorf("cache of 2/3 reports full")
	}
}
