package config

import (
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MaxPerftDepth bounds the requested perft depth.
const MaxPerftDepth = 8

// DefaultCacheSize is the default number of perft cache entries.
const DefaultCacheSize = 1 << 14

// PerftConfig holds settings for node counting.
type PerftConfig struct {
	// Depth in plies; 0 disables perft
	Depth int

	// Divide reports the count below each root move
	Divide bool

	// Workers is the number of goroutines used by divide
	Workers int

	// CacheSize is the node cache capacity; 0 disables the cache
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:   runtime.NumCPU(),
		CacheSize: DefaultCacheSize,
	}
}

// Validate checks the perft settings.
func (p *PerftConfig) Validate() error {
	switch {
	case p.Depth < 0 || p.Depth > MaxPerftDepth:
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d is outside 0..%d", p.Depth, MaxPerftDepth)
	case p.Workers < 1:
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d", p.Workers)
	case p.CacheSize < 0:
		return errors.Wrapf(errors.ErrInvalidConfig, "cache size %d", p.CacheSize)
	}
	return nil
}
