package hashing

import (
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ThreadSafeNodeCache wraps NodeCache with mutex protection for concurrent access.
type ThreadSafeNodeCache struct {
	cache *NodeCache
	mu    sync.RWMutex
}

// NewThreadSafeNodeCache creates a new thread-safe cache.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeNodeCache(maxCapacity int) *ThreadSafeNodeCache {
	return &ThreadSafeNodeCache{
		cache: NewNodeCache(maxCapacity),
	}
}

// Lookup returns the node count stored for board, turn and depth. It takes
// the write lock because it updates the hit statistics.
func (c *ThreadSafeNodeCache) Lookup(board *chess.Board, turn chess.Team, depth int) (uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cache.Lookup(board, turn, depth)
}

// Store records the node count for board, turn and depth.
func (c *ThreadSafeNodeCache) Store(board *chess.Board, turn chess.Team, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Store(board, turn, depth, nodes)
}

// Len returns the number of stored entries.
func (c *ThreadSafeNodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Len()
}

// Stats returns the number of lookup hits and misses.
func (c *ThreadSafeNodeCache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.Stats()
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *ThreadSafeNodeCache) IsFull() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cache.IsFull()
}
