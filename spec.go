package ttlstore

// Storage is the surface of a TTL store.
type Storage interface {
	Len() int
	Clear()
	Set(key, value string, ttl uint64)
	Get(key string) (string, bool)
	Remove(key string) bool
	ScanFrom(key string, count int) []KV
	EvictOneExpired() (KV, bool)
	EvictExpired(limit int) []KV
}
