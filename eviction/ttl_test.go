package eviction

import (
	"testing"
)

func TestTTL_Pop(t *testing.T) {
	tests := []struct {
		name     string
		actions  func(ttl TTL)
		expected string
		found    bool
	}{
		{
			name:    "Pop empty index",
			actions: func(ttl TTL) {},
		},
		{
			name: "Pop single item",
			actions: func(ttl TTL) {
				ttl.Put("key1", 5)
			},
			expected: "key1",
			found:    true,
		},
		{
			name: "Pop multiple items in order of expiration",
			actions: func(ttl TTL) {
				ttl.Put("key1", 10)
				ttl.Put("key2", 5)
				ttl.Put("key3", 15)
			},
			expected: "key2",
			found:    true,
		},
		{
			name: "Pop after deleting an item",
			actions: func(ttl TTL) {
				ttl.Put("key1", 10)
				ttl.Put("key2", 5)
				ttl.Delete("key2", 5)
			},
			expected: "key1",
			found:    true,
		},
		{
			name: "Pop breaks ties by key",
			actions: func(ttl TTL) {
				ttl.Put("c", 2)
				ttl.Put("a", 2)
				ttl.Put("b", 2)
			},
			expected: "a",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ttl := NewTTL(0)
			tt.actions(ttl)

			item, ok := ttl.Pop()
			if ok != tt.found {
				t.Fatalf("expected found %v, got %v", tt.found, ok)
			}

			if item.Key != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, item.Key)
			}
		})
	}
}

func TestTTL_AllMethods(t *testing.T) {
	t.Run("Test Len", func(t *testing.T) {
		ttl := NewTTL(0)
		if ttl.Len() != 0 {
			t.Errorf("expected length 0, got %d", ttl.Len())
		}

		ttl.Put("key1", 1)
		if ttl.Len() != 1 {
			t.Errorf("expected length 1, got %d", ttl.Len())
		}

		// same row again is not a duplicate
		ttl.Put("key1", 1)
		if ttl.Len() != 1 {
			t.Errorf("expected length 1, got %d", ttl.Len())
		}
	})

	t.Run("Test Top", func(t *testing.T) {
		ttl := NewTTL(2)
		if _, ok := ttl.Top(); ok {
			t.Errorf("expected empty top")
		}

		ttl.Put("key1", 10)
		ttl.Put("key2", 5)

		top, ok := ttl.Top()
		if !ok || top.Key != "key2" || top.DeathTime != 5 {
			t.Errorf("expected key2@5, got %v@%d", top.Key, top.DeathTime)
		}

		if ttl.Len() != 2 {
			t.Errorf("expected Top not to remove, got length %d", ttl.Len())
		}
	})

	t.Run("Test Delete", func(t *testing.T) {
		ttl := NewTTL(0)
		ttl.Put("key1", 3)

		if ttl.Delete("key1", 4) {
			t.Errorf("expected delete with a different death time to miss")
		}

		if !ttl.Delete("key1", 3) {
			t.Errorf("expected delete to hit")
		}

		if ttl.Len() != 0 {
			t.Errorf("expected length 0 after delete, got %d", ttl.Len())
		}
	})

	t.Run("Test Ascend", func(t *testing.T) {
		ttl := NewTTL(0)
		ttl.Put("b", 1)
		ttl.Put("a", 2)
		ttl.Put("c", 1)
		ttl.Put("d", 9)

		var got []string
		ttl.Ascend(func(i Item) bool {
			got = append(got, i.Key)
			return len(got) < 3
		})

		expected := []string{"b", "c", "a"}
		if len(got) != len(expected) {
			t.Fatalf("expected %v, got %v", expected, got)
		}

		for i := range expected {
			if got[i] != expected[i] {
				t.Errorf("expected %v, got %v", expected, got)
			}
		}
	})

	t.Run("Test Clear", func(t *testing.T) {
		ttl := NewTTL(0)
		ttl.Put("key1", 1)
		ttl.Put("key2", 2)
		ttl.Clear()

		if ttl.Len() != 0 {
			t.Errorf("expected length 0 after clear, got %d", ttl.Len())
		}
	})
}

func TestItem_Expired(t *testing.T) {
	tests := []struct {
		name     string
		item     Item
		now      uint64
		expected bool
	}{
		{name: "Before death time", item: Item{Key: "k", DeathTime: 5}, now: 4, expected: false},
		{name: "At death time", item: Item{Key: "k", DeathTime: 5}, now: 5, expected: true},
		{name: "After death time", item: Item{Key: "k", DeathTime: 5}, now: 6, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Expired(tt.now); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
