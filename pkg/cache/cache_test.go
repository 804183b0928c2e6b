package cache

import (
	"context"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLRUCache(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache, clk *clock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *clock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "1" {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, clk *clock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clk.advance(60 * time.Millisecond)
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key to be expired")
				}
			},
		},
		{
			name:     "evict oldest when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *clock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key 'a' to be evicted")
				}
				if v, ok := c.Get(ctx, "b"); !ok || string(v) != "2" {
					t.Errorf("expected b=2, got %v", v)
				}
				if v, ok := c.Get(ctx, "c"); !ok || string(v) != "3" {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "recently read entry survives eviction",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *clock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				c.Get(ctx, "a")
				c.Set(ctx, "c", []byte("3"))
				if _, ok := c.Get(ctx, "b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if _, ok := c.Get(ctx, "a"); !ok {
					t.Errorf("expected key 'a' to stay")
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, clk *clock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				clk.advance(30 * time.Millisecond)
				c.Set(ctx, "a", []byte("2"))
				clk.advance(30 * time.Millisecond)
				if v, ok := c.Get(ctx, "a"); !ok || string(v) != "2" {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete removes entry",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache, _ *clock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Delete(ctx, "a")
				c.Delete(ctx, "missing")
				if _, ok := c.Get(ctx, "a"); ok {
					t.Errorf("expected key to be deleted")
				}
				if c.Len() != 0 {
					t.Errorf("expected empty cache, got size %d", c.Len())
				}
			},
		},
		{
			name:     "janitor drops expired",
			capacity: 3,
			ttl:      50 * time.Millisecond,
			actions: func(c *LRUCache, clk *clock, t *testing.T) {
				c.Set(ctx, "a", []byte("1"))
				c.Set(ctx, "b", []byte("2"))
				clk.advance(40 * time.Millisecond)
				c.Set(ctx, "c", []byte("3"))
				clk.advance(20 * time.Millisecond)

				c.dropExpired()

				if c.Len() != 1 {
					t.Errorf("expected only 'c' to remain, got size %d", c.Len())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache("test", tt.capacity, tt.ttl)
			c.now = clk.now
			tt.actions(c, clk, t)
		})
	}
}
