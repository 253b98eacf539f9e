package hashing

import "github.com/lgbarn/chess-rules-go/internal/chess"

// NodeCache remembers perft subtree sizes by position and depth. Entries are
// found by Zobrist key and then compared against the stored board and turn,
// so two positions that share a key never share a count.
type NodeCache struct {
	// table maps a key to every entry stored under it
	table map[uint64][]cacheEntry
	// maxCapacity limits stored entries; 0 means unlimited
	maxCapacity int
	size        int

	hits   int
	misses int
}

type cacheEntry struct {
	board chess.Board
	turn  chess.Team
	depth int
	nodes uint64
}

// NewNodeCache creates an empty cache. maxCapacity of 0 means unlimited
// capacity.
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		table:       make(map[uint64][]cacheEntry),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the node count stored for board, turn and depth.
func (c *NodeCache) Lookup(board *chess.Board, turn chess.Team, depth int) (uint64, bool) {
	for _, e := range c.table[Key(board, turn)] {
		if e.depth == depth && e.turn == turn && e.board == *board {
			c.hits++
			return e.nodes, true
		}
	}
	c.misses++
	return 0, false
}

// Store records the node count for board, turn and depth. It does nothing
// when the cache is full or the entry is already present.
func (c *NodeCache) Store(board *chess.Board, turn chess.Team, depth int, nodes uint64) {
	if c.IsFull() {
		return
	}
	key := Key(board, turn)
	for _, e := range c.table[key] {
		if e.depth == depth && e.turn == turn && e.board == *board {
			return
		}
	}
	c.table[key] = append(c.table[key], cacheEntry{
		board: *board,
		turn:  turn,
		depth: depth,
		nodes: nodes,
	})
	c.size++
}

// Len returns the number of stored entries.
func (c *NodeCache) Len() int {
	return c.size
}

// IsFull returns true if the cache has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (c *NodeCache) IsFull() bool {
	return c.maxCapacity > 0 && c.size >= c.maxCapacity
}

// Stats returns the number of lookup hits and misses.
func (c *NodeCache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
