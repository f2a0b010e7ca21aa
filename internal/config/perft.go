package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted from configuration.
const MaxPerftDepth = 20

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth is the number of plies to count
	Depth int

	// Workers is the number of search goroutines; 0 means one per CPU
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{Depth: 4}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("depth (%d) outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 0 {
		return fmt.Errorf("workers (%d) < 0: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
