package embedding

import (
	"container/list"
	"sync"
)

// VectorCache is an LRU cache of embeddings keyed by text. Re-ranking the
// same corpus (watch mode, repeated API calls) skips inference entirely.
type VectorCache struct {
	capacity int
	entries  map[string]*list.Element
	order    *list.List
	mu       sync.Mutex
}

type vectorEntry struct {
	key    string
	vector []float32
}

// NewVectorCache creates a cache holding up to capacity vectors.
func NewVectorCache(capacity int) *VectorCache {
	if capacity <= 0 {
		capacity = 1024
	}
	return &VectorCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns the cached vector for key if present.
func (c *VectorCache) Get(key string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*vectorEntry).vector, true
	}
	return nil, false
}

// Set stores the vector for key, evicting the least recently used entry when
// the cache is full.
func (c *VectorCache) Set(key string, vector []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[key]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*vectorEntry).vector = vector
		return
	}
	elem := c.order.PushFront(&vectorEntry{key: key, vector: vector})
	c.entries[key] = elem
	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*vectorEntry).key)
		}
	}
}

// Len returns the number of cached vectors.
func (c *VectorCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
