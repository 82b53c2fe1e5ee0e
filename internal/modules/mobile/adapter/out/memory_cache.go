package out

import (
	"context"
	"sync"

	"lifeagent/internal/modules/mobile/domain"
	mobileout "lifeagent/internal/modules/mobile/port/out"
)

type MemoryCache struct {
	mu     sync.RWMutex
	caches map[string]map[string]domain.Response
}

func NewMemoryCache() mobileout.Cache {
	return &MemoryCache{caches: map[string]map[string]domain.Response{}}
}

func (c *MemoryCache) Put(_ context.Context, cacheName string, resp domain.Response) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, ok := c.caches[cacheName]
	if !ok {
		entries = map[string]domain.Response{}
		c.caches[cacheName] = entries
	}
	resp.Body = append([]byte(nil), resp.Body...)
	entries[resp.Path] = resp
	return nil
}

func (c *MemoryCache) Match(_ context.Context, cacheName, path string) (domain.Response, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resp, ok := c.caches[cacheName][path]
	return resp, ok, nil
}
