package eviction

import (
	"github.com/google/btree"
)

const (
	defaultDegree = 32 // Default B-tree degree for the expiration index
)

// Item is a single row of the expiration index.
type Item struct {
	Key       string
	DeathTime uint64
}

// Expired returns true if the item's death time has been reached at now.
func (i Item) Expired(now uint64) bool {
	return i.DeathTime <= now
}

// lessItem orders items by death time, then by key.
func lessItem(a, b Item) bool {
	if a.DeathTime != b.DeathTime {
		return a.DeathTime < b.DeathTime
	}

	return a.Key < b.Key
}

// TTL is an index of keys ordered by the time they expire.
// Keys with equal death times come out in ascending key order.
type TTL interface {
	// Len returns the number of rows in the index.
	Len() int
	// Top returns the row that expires first, without removing it.
	Top() (Item, bool)
	// Put inserts a row for key expiring at deathTime.
	Put(key string, deathTime uint64)
	// Delete removes the row matching key and deathTime exactly.
	Delete(key string, deathTime uint64) bool
	// Pop removes and returns the row that expires first.
	Pop() (Item, bool)
	// Ascend calls fn for each row in expiration order until fn returns false.
	Ascend(fn func(Item) bool)
	// Clear drops every row.
	Clear()
}

var _ TTL = (*ttl)(nil)

type ttl struct {
	tree *btree.BTreeG[Item]
}

// NewTTL returns an empty expiration index.
// A degree below 2 falls back to the default.
func NewTTL(degree int) TTL {
	if degree < 2 {
		degree = defaultDegree
	}

	return &ttl{
		tree: btree.NewG[Item](degree, lessItem),
	}
}

func (t *ttl) Len() int {
	return t.tree.Len()
}

func (t *ttl) Top() (Item, bool) {
	return t.tree.Min()
}

func (t *ttl) Put(key string, deathTime uint64) {
	t.tree.ReplaceOrInsert(Item{Key: key, DeathTime: deathTime})
}

func (t *ttl) Delete(key string, deathTime uint64) bool {
	_, ok := t.tree.Delete(Item{Key: key, DeathTime: deathTime})

	return ok
}

func (t *ttl) Pop() (Item, bool) {
	return t.tree.DeleteMin()
}

func (t *ttl) Ascend(fn func(Item) bool) {
	t.tree.Ascend(btree.ItemIteratorG[Item](fn))
}

func (t *ttl) Clear() {
	t.tree.Clear(false)
}
