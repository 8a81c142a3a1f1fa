package driver

import (
	"sync"
)

// MemCache keeps check results for the lifetime of a process. Watch mode
// uses it to skip files whose content did not change between events.
type MemCache struct {
	mu     sync.RWMutex
	byPath map[string]memEntry
}

type memEntry struct {
	key     Digest
	payload CheckPayload
}

func NewMemCache(capHint int) *MemCache {
	return &MemCache{byPath: make(map[string]memEntry, capHint)}
}

// Get returns the stored payload if path was last checked with the same key.
func (c *MemCache) Get(path string, key Digest) (CheckPayload, bool) {
	if c == nil {
		return CheckPayload{}, false
	}
	c.mu.RLock()
	e, ok := c.byPath[path]
	c.mu.RUnlock()
	if !ok || e.key != key {
		return CheckPayload{}, false
	}
	return e.payload, true
}

func (c *MemCache) Put(path string, key Digest, payload CheckPayload) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.byPath[path] = memEntry{key: key, payload: payload}
	c.mu.Unlock()
}

// Forget drops path, e.g. after the file was removed.
func (c *MemCache) Forget(path string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.byPath, path)
	c.mu.Unlock()
}

func (c *MemCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byPath)
}
