package shopapi

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// MemoryCache is the default Cache: a mutex-guarded map with lazy TTL expiry.
// Growth is unbounded; entries disappear only through TTL expiry, Delete or
// Clear. Acceptable for a dashboard-session lifetime, see DESIGN.md before
// reusing it in long-lived daemons.
type MemoryCache struct {
	mu    sync.RWMutex
	store map[string]*CacheEntry
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{store: make(map[string]*CacheEntry)}
}

// Get returns the entry for key if present and fresh. Expired entries are
// treated as absent and left for the next Set to overwrite.
func (c *MemoryCache) Get(key string) (*CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.store[key]
	if !ok || !time.Now().Before(entry.ExpiresAt) {
		return nil, false
	}
	return entry, true
}

// Set stores entry under key, unconditionally overwriting any prior entry.
func (c *MemoryCache) Set(key string, entry *CacheEntry, ttl time.Duration) {
	now := time.Now()
	entry.StoredAt = now
	entry.ExpiresAt = now.Add(ttl)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = entry
}

// Delete removes key. Removing an absent key is a no-op.
func (c *MemoryCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
}

// Clear empties the cache.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = make(map[string]*CacheEntry)
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

// cacheKey is the request identity: method and resolved URL, query string
// included, matched verbatim.
func cacheKey(method, resolvedURL string) string {
	var b strings.Builder
	b.Grow(len(method) + 1 + len(resolvedURL))
	b.WriteString(method)
	b.WriteByte(':')
	b.WriteString(resolvedURL)
	return b.String()
}

func newCacheEntry(resp *Response) *CacheEntry {
	return &CacheEntry{
		Body:       resp.Body,
		StatusCode: resp.StatusCode,
		Header:     resp.Header.Clone(),
	}
}

func responseFromCache(entry *CacheEntry) *Response {
	return &Response{
		StatusCode: entry.StatusCode,
		Header:     entry.Header,
		Body:       entry.Body,
	}
}

// cacheEligible reports whether a call participates in the cache. Only GET
// calls ever do; the per-request flag can opt a GET out but cannot opt a
// mutation in.
func (c *Client) cacheEligible(method string, cfg *requestConfig) bool {
	if c.cache == nil || method != http.MethodGet {
		return false
	}
	if cfg.cache != nil {
		return *cfg.cache
	}
	return true
}
