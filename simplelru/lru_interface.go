// Package simplelru provides an exact LRU implementation backed by a
// key-indexed recency chain, with optional flat-file persistence.
package simplelru

// LRUCache is the interface for simple LRU cache. Alternative eviction
// policies can satisfy the same contract; only the exact LRU lives here.
type LRUCache[K comparable, V any] interface {
	// Adds a value to the cache, returns true if an eviction occurred and
	// updates the "recently used"-ness of the key.
	Add(key K, value V) bool

	// Returns key's value from the cache and
	// updates the "recently used"-ness of the key. #value, isFound
	Get(key K) (value V, ok bool)

	// Checks if a key exists in cache without updating the recent-ness.
	Contains(key K) (ok bool)

	// Returns key's value without updating the "recently used"-ness of the key.
	Peek(key K) (value V, ok bool)

	// Removes a key from the cache.
	Remove(key K) bool

	// Removes the oldest entry from cache. #key, value, isFound
	RemoveOldest() (K, V, bool)

	// Returns the oldest entry from the cache. #key, value, isFound
	GetOldest() (K, V, bool)

	// Returns a slice of the keys in the cache, most recent first.
	Keys() []K

	// Returns the number of items in the cache.
	Len() int

	// Returns the capacity of the cache.
	Cap() int

	// Clears all cache entries.
	Purge()

	// Resizes cache, returning number evicted
	Resize(int) int

	// Writes all stored pairs to a file, one line each.
	SaveFile(path string, codec Codec[K, V]) error

	// Replays a file's pairs through Add. Missing file is a no-op.
	LoadFile(path string, codec Codec[K, V]) error
}
