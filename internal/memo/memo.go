// Package memo caches values computed from input bytes. An entry is reused
// while the fingerprint of its input is unchanged and rebuilt otherwise.
package memo

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

// Fingerprint returns the hex SHA-256 of data.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

type slot[T any] struct {
	fingerprint string
	value       T
}

// Cache maps a key (usually a file path) to the value last built from it.
// The zero value is ready to use.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]slot[T]
	hits    int
	misses  int
}

// Get returns the value cached under key when data has the same fingerprint
// as the bytes it was built from. Otherwise it calls build, stores the
// result and returns it. Build errors are returned and nothing is cached.
func (c *Cache[T]) Get(key string, data []byte, build func([]byte) (T, error)) (T, error) {
	fp := Fingerprint(data)

	c.mu.Lock()
	if s, ok := c.entries[key]; ok && s.fingerprint == fp {
		c.hits++
		c.mu.Unlock()
		return s.value, nil
	}
	c.misses++
	c.mu.Unlock()

	value, err := build(data)
	if err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[string]slot[T])
	}
	c.entries[key] = slot[T]{fingerprint: fp, value: value}
	c.mu.Unlock()
	return value, nil
}

// Stats reports cumulative hits and misses.
func (c *Cache[T]) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
