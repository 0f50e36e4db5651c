// Package eviction holds the expiration index used to find the next key eligible for
// eviction without scanning the whole store.
package eviction
