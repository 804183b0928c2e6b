package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

const janitorInterval = 2 * time.Minute

type item struct {
	key     string
	value   []byte
	expires time.Time
}

// LRUCache keeps up to capacity entries in process memory. Every entry lives
// for ttl after its last Set; Get does not extend it.
type LRUCache struct {
	name     string
	capacity int
	ttl      time.Duration
	now      func() time.Time

	mu     sync.Mutex
	recent *list.List // front is the most recently used
	items  map[string]*list.Element
}

// NewLRUCache creates a cache. name labels its metrics.
func NewLRUCache(name string, capacity int, ttl time.Duration) *LRUCache {
	return &LRUCache{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		recent:   list.New(),
		items:    make(map[string]*list.Element),
	}
}

func (c *LRUCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		miss(c.name)
		return nil, false
	}

	it := el.Value.(*item)
	if c.now().After(it.expires) {
		c.remove(el)
		cacheEvictions.WithLabelValues(c.name, "expired").Inc()
		miss(c.name)
		return nil, false
	}

	c.recent.MoveToFront(el)
	hit(c.name)
	return it.value, true
}

func (c *LRUCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expires := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		it := el.Value.(*item)
		it.value, it.expires = value, expires
		c.recent.MoveToFront(el)
		return
	}

	c.items[key] = c.recent.PushFront(&item{key: key, value: value, expires: expires})
	for c.recent.Len() > c.capacity {
		c.remove(c.recent.Back())
		cacheEvictions.WithLabelValues(c.name, "capacity").Inc()
	}
}

func (c *LRUCache) Delete(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.remove(el)
	}
}

func (c *LRUCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recent.Len()
}

// Start runs the janitor that drops expired entries until ctx is done.
// Without it expired drafts are only removed when read or pushed out.
func (c *LRUCache) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(janitorInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.dropExpired()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (c *LRUCache) dropExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for el := c.recent.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*item).expires) {
			c.remove(el)
			cacheEvictions.WithLabelValues(c.name, "expired").Inc()
		}
		el = prev
	}
}

func (c *LRUCache) remove(el *list.Element) {
	c.recent.Remove(el)
	delete(c.items, el.Value.(*item).key)
}
