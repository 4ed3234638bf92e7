package filter

import (
	"container/list"
	"sync"
)

// lruCache is a small thread-safe LRU of compiled filters, keyed by
// expression text.
type lruCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
	mu        sync.Mutex
}

type cacheEntry struct {
	expression string
	filter     CompiledFilter
}

func newLRUCache(size int) *lruCache {
	return &lruCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get retrieves a compiled filter, marking it most recently used.
func (c *lruCache) Get(expression string) (CompiledFilter, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[expression]
	if !exists {
		return nil, false
	}
	c.evictList.MoveToFront(node)
	return node.Value.(*cacheEntry).filter, true
}

// Put stores a compiled filter, evicting the least recently used entry
// when the cache is full.
func (c *lruCache) Put(expression string, filter CompiledFilter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.items[expression]; exists {
		c.evictList.MoveToFront(node)
		node.Value.(*cacheEntry).filter = filter
		return
	}

	node := c.evictList.PushFront(&cacheEntry{expression: expression, filter: filter})
	c.items[expression] = node

	if c.evictList.Len() > c.size {
		oldest := c.evictList.Back()
		if oldest != nil {
			c.evictList.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).expression)
		}
	}
}

// Clear removes all cached filters.
func (c *lruCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

// Size returns the number of cached filters.
func (c *lruCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}
