// Package config provides configuration for the checkers tools.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Output    *OutputConfig
	Perft     *PerftConfig
	Duplicate *DuplicateConfig

	// Side is the colour to move first.
	Side checkers.Colour

	// LogLevel is the minimum level written to the console log.
	LogLevel zerolog.Level

	// Start is the initial layout; nil means the standard layout.
	Start *checkers.Template
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:    NewOutputConfig(),
		Perft:     NewPerftConfig(),
		Duplicate: NewDuplicateConfig(),
		Side:      checkers.Black,
		LogLevel:  zerolog.InfoLevel,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}

// StartBoard builds the configured initial board.
func (c *Config) StartBoard() (*checkers.Board, error) {
	if c.Start == nil {
		return checkers.DefaultBuilder().Build(), nil
	}
	b, err := checkers.BuilderFromTemplate(*c.Start)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// ParseSide converts "white" or "black" to a colour.
func ParseSide(name string) (checkers.Colour, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "black", "b":
		return checkers.Black, nil
	case "white", "w":
		return checkers.White, nil
	}
	return checkers.Black, fmt.Errorf("side %q: %w", name, errors.ErrInvalidConfig)
}
