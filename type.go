package ttlstore

import "math"

// Infinite is the death time of an entry that never expires.
const Infinite uint64 = math.MaxUint64

// Entry is a key, value and time-to-live triple used for bulk construction.
// A zero TTL means the entry never expires.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	TTL   uint64 `yaml:"ttl"`
}

// KV is a key and its value.
type KV struct {
	Key   string
	Value string
}

// record is a row of the primary index.
type record struct {
	key       string
	value     string
	deathTime uint64
}

// alive returns true if the record is still readable at now.
func (r record) alive(now uint64) bool {
	return r.deathTime == Infinite || r.deathTime > now
}

// mortal returns true if the record has a row in the expiration index.
func (r record) mortal() bool {
	return r.deathTime != Infinite
}

func lessRecord(a, b record) bool {
	return a.key < b.key
}
