package simplelru

import (
	"errors"
)

// EvictCallback is used to get a callback when a cache entry is evicted
type EvictCallback[K comparable, V any] func(key K, value V)

// keyRef is an optional key reference. Chain links are stored as key
// values and resolved through the table, never as pointers between
// entries.
type keyRef[K comparable] struct {
	key K
	ok  bool
}

// entry holds a stored value and its position in the recency chain.
// prev points toward the head (more recent), next toward the tail.
type entry[K comparable, V any] struct {
	value V
	prev  keyRef[K]
	next  keyRef[K]
}

// LRU implements a non-thread safe fixed size LRU cache.
//
// Recency is tracked by a doubly linked chain threaded through the
// table by key: every entry names its neighbors by their keys, and each
// traversal step resolves the named key through the table. The chain
// runs from head (most recently used) to tail (least recently used) and
// visits every stored key exactly once.
type LRU[K comparable, V any] struct {
	size    int
	table   map[K]*entry[K, V]
	head    keyRef[K] // most recently used
	tail    keyRef[K] // least recently used
	onEvict EvictCallback[K, V]
}

// NewLRU constructs an LRU of the given size. Size must be positive;
// there is no zero-capacity cache.
func NewLRU[K comparable, V any](size int, onEvict EvictCallback[K, V]) (*LRU[K, V], error) {
	if size <= 0 {
		return nil, errors.New("must provide a positive size")
	}
	c := &LRU[K, V]{
		size:    size,
		table:   make(map[K]*entry[K, V], size),
		onEvict: onEvict,
	}
	return c, nil
}

// Add adds a value to the cache. Returns true if an eviction occurred.
//
// An existing key keeps its entry: the value is overwritten in place and
// the entry promoted to head. A new key at capacity first evicts the
// current tail.
func (c *LRU[K, V]) Add(key K, value V) (evicted bool) {
	if ent, ok := c.table[key]; ok {
		c.detach(key)
		ent.value = value
		c.attachAtHead(key)
		return false
	}

	if len(c.table) == c.size {
		c.removeElement(c.tail.key)
		evicted = true
	}

	c.table[key] = &entry[K, V]{value: value}
	c.attachAtHead(key)
	return evicted
}

// Get looks up a key's value from the cache, promoting the entry to most
// recently used. A miss touches nothing.
func (c *LRU[K, V]) Get(key K) (value V, ok bool) {
	ent, ok := c.table[key]
	if !ok {
		return
	}
	c.detach(key)
	c.attachAtHead(key)
	return ent.value, true
}

// Contains checks if a key is in the cache, without updating the
// recent-ness or deleting it for being stale.
func (c *LRU[K, V]) Contains(key K) (ok bool) {
	_, ok = c.table[key]
	return ok
}

// Peek returns the key value (or undefined if not found) without updating
// the "recently used"-ness of the key.
func (c *LRU[K, V]) Peek(key K) (value V, ok bool) {
	if ent, ok := c.table[key]; ok {
		return ent.value, true
	}
	return value, false
}

// Remove removes the provided key from the cache, returning if the
// key was contained.
func (c *LRU[K, V]) Remove(key K) (present bool) {
	if _, ok := c.table[key]; !ok {
		return false
	}
	c.removeElement(key)
	return true
}

// RemoveOldest removes the oldest entry from the cache.
func (c *LRU[K, V]) RemoveOldest() (key K, value V, ok bool) {
	if !c.tail.ok {
		return
	}
	key = c.tail.key
	value = c.table[key].value
	c.removeElement(key)
	return key, value, true
}

// GetOldest returns the oldest entry without removing or promoting it.
func (c *LRU[K, V]) GetOldest() (key K, value V, ok bool) {
	if !c.tail.ok {
		return
	}
	return c.tail.key, c.table[c.tail.key].value, true
}

// Keys returns the stored keys in recency order, most recently used
// first.
func (c *LRU[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.table))
	for ref := c.head; ref.ok; ref = c.table[ref.key].next {
		keys = append(keys, ref.key)
	}
	return keys
}

// Len returns the number of items in the cache.
func (c *LRU[K, V]) Len() int {
	return len(c.table)
}

// Cap returns the capacity of the cache.
func (c *LRU[K, V]) Cap() int {
	return c.size
}

// Purge is used to completely clear the cache.
func (c *LRU[K, V]) Purge() {
	for key, ent := range c.table {
		if c.onEvict != nil {
			c.onEvict(key, ent.value)
		}
		delete(c.table, key)
	}
	c.head = keyRef[K]{}
	c.tail = keyRef[K]{}
}

// Resize changes the cache size, evicting from the tail while the
// current length exceeds the new size. The capacity stays positive.
func (c *LRU[K, V]) Resize(size int) (evicted int) {
	if size < 1 {
		size = 1
	}
	diff := len(c.table) - size
	if diff < 0 {
		diff = 0
	}
	for i := 0; i < diff; i++ {
		c.removeElement(c.tail.key)
	}
	c.size = size
	return diff
}

// detach unlinks key from its current chain position by pointing its
// neighbors at each other. The entry stays in the table with stale
// links; the caller either reattaches it or removes it.
func (c *LRU[K, V]) detach(key K) {
	ent := c.table[key]
	if ent.prev.ok {
		c.table[ent.prev.key].next = ent.next
	} else {
		c.head = ent.next
	}
	if ent.next.ok {
		c.table[ent.next.key].prev = ent.prev
	} else {
		c.tail = ent.prev
	}
}

// attachAtHead links the entry in front of the current head and makes it
// the head. On an empty chain it becomes the tail too.
func (c *LRU[K, V]) attachAtHead(key K) {
	ent := c.table[key]
	ent.prev = keyRef[K]{}
	ent.next = c.head
	if c.head.ok {
		c.table[c.head.key].prev = keyRef[K]{key: key, ok: true}
	}
	c.head = keyRef[K]{key: key, ok: true}
	if !c.tail.ok {
		c.tail = c.head
	}
}

// removeElement detaches key from the chain, deletes it from the table
// and reports the eviction.
func (c *LRU[K, V]) removeElement(key K) {
	ent := c.table[key]
	c.detach(key)
	delete(c.table, key)
	if c.onEvict != nil {
		c.onEvict(key, ent.value)
	}
}
