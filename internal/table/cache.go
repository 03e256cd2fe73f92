package table

import "sync"

// Cache memoizes loaded tables by source path. It is an explicit object
// wired in at construction time so tests and the /reload endpoint control
// invalidation; there is deliberately no package-level instance.
//
// Cached tables are shared read-only: transforms all copy before mutating.
type Cache struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{tables: make(map[string]*Table)}
}

// Get returns the cached table for path, if any.
func (c *Cache) Get(path string) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[path]
	return t, ok
}

// Put stores a table under path, replacing any previous entry.
func (c *Cache) Put(path string, t *Table) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables[path] = t
}

// Invalidate drops the entry for path. A following Load recomputes it.
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tables, path)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables = make(map[string]*Table)
}
