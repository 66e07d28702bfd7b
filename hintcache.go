package webeater

import "sync"

// HintCache caches resolved hints keyed by source-list signature. Hint
// resolution is the only I/O-bound step of an extraction session and does
// not depend on the document being processed, so a resolution can be reused
// across documents until the caller invalidates it. The cache is owned by
// the caller; there is no module-level state.
//
// HintCache is safe for concurrent use.
type HintCache struct {
	mu      sync.RWMutex
	entries map[string]*Resolution
}

// NewHintCache creates an empty HintCache.
func NewHintCache() *HintCache {
	return &HintCache{entries: make(map[string]*Resolution)}
}

// Get returns the cached resolution for the signature, if present.
func (c *HintCache) Get(signature string) (*Resolution, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[signature]
	return res, ok
}

// Put stores a resolution under its signature, replacing any existing entry.
func (c *HintCache) Put(res *Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[res.Signature()] = res
}

// Invalidate removes the entry for the signature, if present.
func (c *HintCache) Invalidate(signature string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, signature)
}

// Clear removes all entries.
func (c *HintCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Resolution)
}
