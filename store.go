// Package ttlstore is an embeddable in-memory key-value store with per-key time-to-live,
// ordered range scans and explicit eviction of expired entries.
package ttlstore

import (
	"github.com/google/btree"

	"github.com/achu-1612/ttlstore/clock"
	"github.com/achu-1612/ttlstore/eviction"
	"github.com/achu-1612/ttlstore/log"
)

// make sure Store implements the Storage interface
var _ Storage = (*Store)(nil)

// Store is an in-memory key-value store with per-key expiration.
//
// Entries live in a key-ordered primary index. Entries with a finite death time
// also have exactly one row in the expiration index, ordered by (death time, key).
// Expired entries stay stored until Remove, EvictOneExpired or EvictExpired
// touches them; reads only hide them.
//
// A Store is not safe for concurrent use.
type Store struct {
	items *btree.BTreeG[record]
	ttl   eviction.TTL

	clock clock.Clock

	l log.Logger
}

// New returns a store populated with entries, applied in order through Set.
// For duplicate keys the last entry wins.
func New(entries []Entry, opt Options) *Store {
	if opt.Name == "" {
		opt.Name = defaultName
	}

	if opt.Degree < 2 {
		opt.Degree = defaultDegree
	}

	s := &Store{
		items: btree.NewG[record](opt.Degree, lessRecord),
		ttl:   eviction.NewTTL(opt.Degree),
		clock: opt.Clock,
		l:     opt.Logger,
	}

	if s.l == nil {
		s.l = log.New(opt.Name, opt.SuppressLog, opt.DebugLogs)
	}

	if s.clock == nil {
		s.l.Warn("no clock provided, using system clock")

		s.clock = clock.System()
	}

	for _, e := range entries {
		s.Set(e.Key, e.Value, e.TTL)
	}

	s.l.Debugf("store initialized with %d entries, %d stored", len(entries), s.Len())

	return s
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (s *Store) Len() int {
	return s.items.Len()
}

// Clear drops every entry.
func (s *Store) Clear() {
	s.items.Clear(false)
	s.ttl.Clear()

	s.l.Debugf("store cleared")
}

// deathTime returns the absolute death time for ttl, reading the clock only for
// finite ttls. A finite death time saturates below Infinite.
func (s *Store) deathTime(ttl uint64) uint64 {
	if ttl == 0 {
		return Infinite
	}

	now := s.clock.Now()
	if now >= Infinite-1 || ttl > Infinite-1-now {
		return Infinite - 1
	}

	return now + ttl
}

// Set stores value under key. A zero ttl keeps the entry forever, otherwise it
// expires ttl time units from now. Any previous value and ttl are replaced.
func (s *Store) Set(key, value string, ttl uint64) {
	r := record{
		key:       key,
		value:     value,
		deathTime: s.deathTime(ttl),
	}

	if old, ok := s.items.ReplaceOrInsert(r); ok && old.mortal() {
		s.ttl.Delete(old.key, old.deathTime)
	}

	if r.mortal() {
		s.ttl.Put(r.key, r.deathTime)
	}

	s.l.Debugf("set key '%s' ttl %d", key, ttl)
}

// Get returns the value stored under key if it has not expired.
func (s *Store) Get(key string) (string, bool) {
	r, ok := s.items.Get(record{key: key})
	if !ok {
		return "", false
	}

	if r.mortal() && r.deathTime <= s.clock.Now() {
		return "", false
	}

	return r.value, true
}

// Remove deletes key and reports whether it was stored, expired or not.
func (s *Store) Remove(key string) bool {
	_, ok := s.remove(key)

	return ok
}

func (s *Store) remove(key string) (record, bool) {
	r, ok := s.items.Get(record{key: key})
	if !ok {
		return record{}, false
	}

	if r.mortal() {
		s.ttl.Delete(r.key, r.deathTime)
	}

	s.items.Delete(r)

	s.l.Debugf("remove key '%s'", key)

	return r, true
}

// ScanFrom returns up to count live entries with keys >= key, in ascending key order.
func (s *Store) ScanFrom(key string, count int) []KV {
	if count <= 0 {
		return []KV{}
	}

	now := s.clock.Now()
	out := make([]KV, 0, min(count, s.items.Len()))

	s.items.AscendGreaterOrEqual(record{key: key}, func(r record) bool {
		if r.alive(now) {
			out = append(out, KV{Key: r.key, Value: r.value})
		}

		return len(out) < count
	})

	return out
}

// EvictOneExpired removes the entry that expired first and returns it.
// Among entries expiring at the same time the lowest key goes first.
// It returns false when nothing has expired yet.
func (s *Store) EvictOneExpired() (KV, bool) {
	top, ok := s.ttl.Top()
	if !ok || !top.Expired(s.clock.Now()) {
		return KV{}, false
	}

	r, ok := s.remove(top.Key)
	if !ok {
		// index row without a primary entry
		s.l.Errorf("expiration index holds unknown key '%s'", top.Key)
		s.ttl.Delete(top.Key, top.DeathTime)

		return KV{}, false
	}

	s.l.Debugf("evicted key '%s' expired at %d", r.key, r.deathTime)

	return KV{Key: r.key, Value: r.value}, true
}

// EvictExpired evicts expired entries in expiration order until none are left or
// limit entries were evicted. A limit <= 0 means no limit.
func (s *Store) EvictExpired(limit int) []KV {
	out := []KV{}

	for limit <= 0 || len(out) < limit {
		kv, ok := s.EvictOneExpired()
		if !ok {
			break
		}

		out = append(out, kv)
	}

	return out
}
