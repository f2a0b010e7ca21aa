package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// OutputFormat selects how move lists are written.
type OutputFormat int

const (
	TextFormat OutputFormat = iota // one move per line
	JSONFormat
	YAMLFormat
)

// String returns the configuration name of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSONFormat:
		return "json"
	case YAMLFormat:
		return "yaml"
	default:
		return "text"
	}
}

// ParseOutputFormat converts a configuration name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	case "yaml", "yml":
		return YAMLFormat, nil
	}
	return TextFormat, fmt.Errorf("format %q: %w", name, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Notation selects square numbers or coordinate pairs
	Notation checkers.NotationStyle

	// Collapsed writes captures as "fromxto" instead of listing every
	// captured square
	Collapsed bool

	// Format is the document format for move lists
	Format OutputFormat
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Notation:  checkers.NumericNotation,
		Collapsed: true,
		Format:    TextFormat,
	}
}
