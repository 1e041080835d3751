package cache

import (
	"container/list"
	"sync"
)

// Cache is a thread-safe LRU cache mapping string keys to string values.
// It memoizes hot lookups such as path-to-language resolution during
// large scans.
type Cache struct {
	capacity int
	items    map[string]*list.Element
	queue    *list.List
	mutex    sync.Mutex
}

type item struct {
	key   string
	value string
}

// New creates a new cache with the given capacity
func New(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		queue:    list.New(),
	}
}

// Get retrieves a value from the cache
func (c *Cache) Get(key string) (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	element, exists := c.items[key]
	if !exists {
		return "", false
	}
	c.queue.MoveToFront(element)
	return element.Value.(*item).value, true
}

// Set adds or updates a value in the cache
func (c *Cache) Set(key, value string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if element, exists := c.items[key]; exists {
		c.queue.MoveToFront(element)
		element.Value.(*item).value = value
		return
	}

	element := c.queue.PushFront(&item{key: key, value: value})
	c.items[key] = element

	if c.queue.Len() > c.capacity {
		oldest := c.queue.Back()
		if oldest != nil {
			c.queue.Remove(oldest)
			delete(c.items, oldest.Value.(*item).key)
		}
	}
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = make(map[string]*list.Element)
	c.queue = list.New()
}

// Len returns the number of items in the cache
func (c *Cache) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}
