package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rakeshMoramreddy/Peer-to-Peer-Rental-Platform/model"
)

type entry struct {
	at    time.Time
	items []model.Item
}

// Memory is the in-process cache. Expired entries are not evicted on read;
// they linger until the next Put for the same key overwrites them.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now}
}

func (c *Memory) Get(ctx context.Context, key string) ([]model.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.at) >= Freshness {
		return nil, false
	}
	return e.items, true
}

func (c *Memory) Put(ctx context.Context, key string, items []model.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{at: c.now(), items: items}
}
