package config

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// DuplicateConfig holds settings for distinct-position counting.
type DuplicateConfig struct {
	// CountDistinct enables counting of distinct perft leaf positions
	CountDistinct bool

	// Capacity bounds the number of stored positions; 0 means unlimited
	Capacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.Capacity < 0 {
		return fmt.Errorf("capacity (%d) < 0: %w", d.Capacity, errors.ErrInvalidConfig)
	}
	return nil
}
