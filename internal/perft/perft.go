// Package perft counts the leaf nodes of the legal move tree. The counts are
// compared with published values and with an independent move generator to
// check the rules engine.
package perft

import (
	"context"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Cache stores subtree counts. Both hashing.NodeCache and
// hashing.ThreadSafeNodeCache satisfy it; Divide needs the thread-safe one.
type Cache interface {
	Lookup(board *chess.Board, turn chess.Team, depth int) (uint64, bool)
	Store(board *chess.Board, turn chess.Team, depth int, nodes uint64)
}

// minCachedDepth is the shallowest subtree worth caching.
const minCachedDepth = 2

// Count returns the number of positions reached after exactly depth plies
// from pos with turn to move. cache may be nil.
func Count(pos *engine.Position, turn chess.Team, depth int, cache Cache) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	moves, err := pos.AllLegalMoves(turn)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}

	var board *chess.Board
	if cache != nil && depth >= minCachedDepth {
		board = pos.Board()
		if nodes, ok := cache.Lookup(board, turn, depth); ok {
			return nodes, nil
		}
	}

	var total uint64
	for _, m := range moves {
		next := pos.Apply(m)
		nodes, err := Count(&next, turn.Opposite(), depth-1, cache)
		if err != nil {
			return 0, err
		}
		total += nodes
	}

	if board != nil {
		cache.Store(board, turn, depth, total)
	}
	return total, nil
}

// MoveCount is the subtree size below one root move.
type MoveCount struct {
	Move  chess.Move
	Nodes uint64
}

// Result is the outcome of Divide.
type Result struct {
	Depth   int
	Nodes   uint64
	Moves   []MoveCount // In move generation order
	Elapsed time.Duration
}

// Options configures Divide.
type Options struct {
	Workers int   // 0 means one per CPU
	Cache   Cache // Shared by all workers; nil disables caching
}

// Divide counts nodes depth plies deep and reports the count below each root
// move. Root moves are searched in parallel on a worker pool.
func Divide(ctx context.Context, pos engine.Position, turn chess.Team, depth int, opts Options) (*Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d", depth)
	}

	start := time.Now()
	moves, err := pos.AllLegalMoves(turn)
	if err != nil {
		return nil, err
	}

	process := func(_ context.Context, item worker.WorkItem) worker.ProcessResult {
		next := item.Position.Apply(item.Move)
		nodes, err := Count(&next, item.Turn.Opposite(), item.Depth-1, opts.Cache)
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes, Error: err}
	}

	poolOpts := []worker.PoolOption{worker.WithBufferSize(len(moves) + 1)}
	if opts.Workers > 0 {
		poolOpts = append(poolOpts, worker.WithWorkers(opts.Workers))
	}
	pool := worker.NewPool(process, poolOpts...)
	pool.Start(ctx)

	go func() {
		defer pool.Close()
		for i, m := range moves {
			item := worker.WorkItem{Index: i, Position: pos, Turn: turn, Move: m, Depth: depth}
			if err := pool.Submit(ctx, item); err != nil {
				return
			}
		}
	}()

	result := &Result{Depth: depth, Moves: make([]MoveCount, len(moves))}
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
			}
			pool.Stop()
			continue
		}
		result.Moves[r.Index] = MoveCount{Move: r.Move, Nodes: r.Nodes}
		result.Nodes += r.Nodes
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result.Elapsed = time.Since(start)
	return result, nil
}
